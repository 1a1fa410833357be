/*
Package ports defines the interfaces between the tangent engine and its
adapters, following Hexagonal Architecture principles.

The only port today is HistoryStore, the calculation history tape.
Implementations live under pkg/adapters; RunHistoryStoreContract is the
shared suite every implementation is tested against.
*/
package ports
