package notify

import (
	"github.com/rs/zerolog"
)

// Presenter reports connection changes and switch results as desktop
// notifications. Delivery failures are logged and otherwise ignored.
type Presenter struct {
	Notifier *Notifier
	Log      zerolog.Logger
}

func (p *Presenter) OnConnectionChanged(connected bool) {
	summary, body := "Tablet connected", "Press the switch key to move it to the next monitor."
	if !connected {
		summary, body = "Tablet disconnected", "No tablet detected."
	}
	p.send(summary, body)
}

func (p *Presenter) OnActionResult(err error) {
	if err != nil {
		p.send("Tablet switch failed", err.Error())
		return
	}
	p.send("Tablet switched", "Switched tablet monitor mapping.")
}

func (p *Presenter) send(summary, body string) {
	if p.Notifier == nil {
		return
	}
	if err := p.Notifier.Send(summary, body); err != nil {
		p.Log.Warn().Err(err).Str("summary", summary).Msg("desktop notification failed")
	}
}
