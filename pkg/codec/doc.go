/*
Package codec translates between typed domain actions and their external forms.

Three forms are supported:

  - Envelope: {type, payload} maps, used by the HTTP and MCP adapters.
  - Script: a YAML or JSON file holding a named list of envelopes, used by `sprig replay`.
  - Command: the one-line text grammar of the REPL (add, rm, mv, clear).

Decoding is strict: unknown kinds yield ErrUnknownAction and missing or extra payload
fields yield ErrInvalidPayload, so a malformed action never reaches a store.

# Script Format

	name: groceries
	actions:
	  - type: add_todo
	    payload: {text: milk}
	  - type: move_todo
	    payload: {from: 0, to: 1}
	  - type: clear_all
*/
package codec
