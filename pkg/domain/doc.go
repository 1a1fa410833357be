/*
Package domain contains the records and events shared by the tangent engine
and its adapters.

The numeric work itself lives in pkg/trig; this package wraps its results
in the shapes the rest of the system passes around. It stays free of I/O
and third-party dependencies, following Hexagonal Architecture principles.

# Key Entities

  - Outcome: the classification of a finished calculation (ok, invalid
    input, undefined tangent, error).
  - Calculation: one history record as stored by a ports.HistoryStore.
  - CalculationEvent: the observability payload handed to LifecycleHooks.
*/
package domain
