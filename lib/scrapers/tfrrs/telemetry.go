package tfrrs

import (
	"tfrrs-backend/lib/restyutil"
	"tfrrs-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/tfrrs")

// SetRestyInstrumentOutput dumps every request/response pair made by the
// client to out, for verbose debugging. Call before issuing requests;
// search sessions created afterwards inherit it.
func (c *Client) SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	c.instrumentOut = out
	restyutil.InstrumentClient(c.http, out)
}

func instrumentHttp(c *Client, client *resty.Client) {
	telemetry.InstrumentResty(client, "scrapers/tfrrs/http")
	if c.instrumentOut != nil {
		restyutil.InstrumentClient(client, c.instrumentOut)
	}
}
