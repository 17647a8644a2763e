/*
Package ports defines the driving ports (interfaces) of sprig.

These interfaces decouple the view adapters (CLI runner, HTTP, MCP) from the
concrete store, so any implementation passing RunStoreContract can back them.

# Key Interfaces

  - Store: GetState, Dispatch and Subscribe over a state type S and an action type A.
  - Disposable: The handle returned by Subscribe.
  - TodoStore: Store specialized to domain.State and domain.Action.
*/
package ports
