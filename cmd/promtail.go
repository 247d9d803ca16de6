package main

import (
	"github.com/ic2hrmk/promtail"
	"github.com/sirupsen/logrus"
)

func (a *App) initPromTail() error {
	identifiers := map[string]string{
		"instanceId": a.Config.Name,
	}

	promTail, err := promtail.NewJSONv1Client(a.Config.LokiAddr, identifiers)
	if err != nil {
		return err
	}

	a.PromTail = promTail
	a.Logger.AddHook(&promTailHook{client: promTail})

	return nil
}

// promTailHook ships every logrus entry to loki.
type promTailHook struct {
	client promtail.Client
}

func (h *promTailHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *promTailHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}

	switch entry.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		h.client.Debugf("%s", line)
	case logrus.InfoLevel:
		h.client.Infof("%s", line)
	case logrus.WarnLevel:
		h.client.Warnf("%s", line)
	default:
		h.client.Errorf("%s", line)
	}

	return nil
}
