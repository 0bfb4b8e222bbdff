// htxn is a CLI which converts helium transactions between wire and JSON forms.
package main

import (
	"os"

	"github.com/helium/proto-go/pkg/client"
	"github.com/helium/proto-go/pkg/log"
)

func main() {
	app := client.NewApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		log.DefaultLogger.Errorf("Fail running application with %s", err)
		os.Exit(1)
	}
}
