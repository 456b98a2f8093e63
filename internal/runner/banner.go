package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
   ___          _           __    _   ___  ___
  / _ \ ___ _  (_)  ____ ___/ /  (_) / _/ / _/
 / ___// _  / / /  / __// _  /  / / / _/ / _/
/_/    \_,_/ /_/  /_/   \_,_/  /_/  /_/  /_/
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}

// GetUpdateCallback returns a callback function that updates pairdiff
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("pairdiff", version)()
	}
}
