package logger

import (
	"io"
	log "log/slog"
	"net"
	"os"

	"Peakfuel/internal/api/config"
)

var LogWriter io.Writer

// InitLogger wires the default slog logger: JSON to stdout, plus an optional
// TCP tee to logstash when the address is configured and reachable.
func InitLogger() {
	cfg := config.Cfg.Logstash

	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	var finalHandler log.Handler = hStdout
	LogWriter = os.Stdout

	if cfg.Address != "" {
		conn, err := net.Dial("tcp", cfg.Address)
		if err != nil {
			log.Warn("Failed to connect to logstash, logging to stdout only", "err", err)
		} else {
			hRemote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: log.LevelInfo}).
				WithAttrs([]log.Attr{
					log.String("target_index", cfg.Index),
					log.String("log_token", cfg.Token),
				})

			finalHandler = &TeeHandler{
				handlers: []log.Handler{hStdout, &RemoteFilterHandler{next: hRemote}},
			}
			LogWriter = conn
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}
