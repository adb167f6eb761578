// Command leave-desk-admin is the operator CLI: migrations, access codes,
// admin grants, subscription overrides and manual sweeps.
package main

import (
	"os"

	"github.com/MKhiriev/go-leave-desk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cmd := NewRootCmd(openDeps)
	cmd.Version = models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
