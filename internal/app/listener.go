package app

import (
	"github.com/hibeam-dev/chaski_client/internal/event"
	"github.com/hibeam-dev/chaski_client/internal/i18n"
	"github.com/hibeam-dev/chaski_client/internal/session"
	"github.com/hibeam-dev/chaski_client/internal/util"
)

// logListener is the listener one connect attempt runs under: every event is
// logged and handed to the sink, every engine log line goes through the
// engine log writer. It runs on the session's worker goroutine, so nothing
// here blocks.
type logListener struct {
	logger    *util.Logger
	sink      event.Sink
	logWriter *util.EngineLogWriter
}

func newLogListener(logger *util.Logger, sink event.Sink) *logListener {
	return &logListener{
		logger:    logger,
		sink:      sink,
		logWriter: util.NewEngineLogWriter(logger, ""),
	}
}

func (l *logListener) OnEvent(ev *event.Event) {
	fields := map[string]any{
		"kind": ev.Name(),
	}
	if rendered := ev.Render(); rendered != "" {
		fields["detail"] = rendered
	}

	if ev.IsError() {
		l.logger.Error(i18n.T("connect_event", map[string]any{"Name": ev.Name()}), fields)
	} else {
		l.logger.Info(i18n.T("connect_event", map[string]any{"Name": ev.Name()}), fields)
	}

	l.sink.AddEvent(ev)
}

func (l *logListener) OnLog(line session.LogLine) {
	_, _ = l.logWriter.Write([]byte(line.Text))
}

var _ session.Listener = (*logListener)(nil)
