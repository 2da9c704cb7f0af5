package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/scylladb/termtables"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/araddon/httpdate"
)

var (
	timezone = "UTC"
	verbose  = false
)

func main() {
	flag.StringVarP(&timezone, "timezone", "z", "UTC", "Timezone aka `America/Los_Angeles` used to show the converted time")
	flag.BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
	flag.Parse()

	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if flag.NArg() == 0 {
		fmt.Println(`Must pass   ./httpdate "Wed, 09 Feb 1994 22:23:32 GMT"`)
		os.Exit(2)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.WithError(err).Fatalf("Unable to load timezone %q", timezone)
	}

	table, failed := render(flag.Args(), loc)
	fmt.Println(table.Render())
	if failed > 0 {
		os.Exit(1)
	}
}

// render parses each input into a table row, logging those that fail.
func render(inputs []string, loc *time.Location) (*termtables.Table, int) {
	table := termtables.CreateTable()
	table.AddHeaders("Input", "Year", "Month", "Day", "Hour", "Minute", "Second", "Time in "+loc.String())

	failed := 0
	for _, datestr := range inputs {
		dt, err := httpdate.Parse(datestr)
		if err != nil {
			failed++
			log.WithFields(log.Fields{
				"input": datestr,
				"kind":  httpdate.KindOf(err).String(),
			}).Error(errors.Wrap(err, "could not parse"))
			continue
		}
		log.WithField("input", datestr).Debugf("parsed %v", dt)
		table.AddRow(datestr,
			strconv.Itoa(dt.Year), strconv.Itoa(dt.Month), strconv.Itoa(dt.Day),
			strconv.Itoa(dt.Hour), strconv.Itoa(dt.Minute), strconv.Itoa(dt.Second),
			dt.Time().In(loc).String())
	}
	return table, failed
}
