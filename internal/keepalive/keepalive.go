package keepalive

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/robfig/cron/v3"

	"github.com/vishalparmarr/react-native-bookworm/internal/logs"
)

// Start schedules a GET against apiURL every 14 minutes so free-tier
// hosting does not put the server to sleep. Returns the running scheduler.
func Start(apiURL string) *cron.Cron {
	client := resty.New()
	c := cron.New()
	_, _ = c.AddFunc("*/14 * * * *", func() {
		resp, err := client.R().Get(apiURL)
		if err != nil {
			logs.LogJSON("ERROR", "Keep-alive request failed", map[string]interface{}{
				"error": err.Error(),
				"url":   apiURL,
			})
			return
		}
		if resp.StatusCode() == http.StatusOK {
			logs.LogJSON("INFO", "Keep-alive request sent", map[string]interface{}{"url": apiURL})
		} else {
			logs.LogJSON("WARN", "Keep-alive request failed", map[string]interface{}{
				"status": resp.StatusCode(),
				"url":    apiURL,
			})
		}
	})
	c.Start()
	return c
}
