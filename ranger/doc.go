/*
Package ranger initializes and manages a signpost static host with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type,
constructed with [New] and any number of [RangerOption].

[*Ranger.Guide] begins the web server.
By default, it listens on [DefaultPort] (:3000),
serving the client's build output, the API under [APIPrefix],
and, for every other GET, the client's entry document.
Paths the route table resolves are answered with 200, all others with 404.

Stop that web server with [*Ranger.Shutdown],
cancel the context passed to [WithContext],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures the static host through environment variables.
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - CORS_ORIGIN: the origin allowed to call the API from another host; default: *
  - DIST_DIR: the directory holding the client's build output; default: client/dist
  - ENVIRONMENT: the environment the application is running in; cf. [signpost.Environment]
  - HOST: the host the application listens on; default: all interfaces
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - MAINTENANCE_MODE: when true, every request gets a 503; default: false
  - PORT: the port the application should listen on; default: :3000
  - SENTRY_DSN: when set, errors are reported to Sentry
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - SIGNPOST_BASE: the path the client is mounted under; overrides the route file's
  - SIGNPOST_MODE: history or hash; overrides the route file's
  - SIGNPOST_ROUTES: a TOML or YAML route file; default: the built-in Home, CYK, and FSM routes
*/
package ranger
