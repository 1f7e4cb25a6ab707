/*

The resp package provides a high-level API for responding to HTTP requests
made to the static host, configured once for the whole application.

resp provides two ways of responding to an HTTP request:
- rendering JSON data
- serving the client's entry document, letting the client resolve the path itself

*/
package resp
