package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/pflag"

	hashmap "github.com/kobeHub/Hash-map"
	"github.com/kobeHub/Hash-map/internal/config"
	"github.com/kobeHub/Hash-map/internal/logging"
)

var mainLog = log.WithField("name", "Main")

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:    hashdemo [options]... [CONFIG_FILE]

      hashdemo exercises the hash table with a fixed set of keys and reports
      its bookkeeping. By default it looks for hashdemo.yml in the current
      working directory.

      -h, --help      Print this help dialog.
      -L, --log       Specify a file to write log messages to.
      -l, --loglevel  Minimum log level (debug, info, warning, error, fatal).
      -n, --keys      Number of extra keys to insert and delete afterwards.
`)
	}

	logfile := pflag.StringP("log", "L", "", "Specify the file to write log messages to.")
	loglevel := pflag.StringP("loglevel", "l", "", "Specify minimum log level that should be logged.")
	extra := pflag.IntP("keys", "n", 1000, "Number of extra keys to insert and delete.")
	help := pflag.BoolP("help", "h", false, "Show the application usage.")
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(1)
	}

	log.SetHandler(logging.NewHandler(os.Stderr))

	configPath, configName := ".", "hashdemo"
	if args := pflag.Args(); len(args) > 0 {
		configName = strings.TrimSuffix(filepath.Base(args[0]), path.Ext(args[0]))
		configPath = filepath.Dir(args[0])
	}
	conf, err := config.Load(configPath, configName)
	if err != nil {
		mainLog.WithError(err).Fatal("Failed to load config")
	}

	level := conf.Log.Level
	if *loglevel != "" {
		level = *loglevel
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		mainLog.Fatalf("Unknown log-level %q.", level)
	}
	log.SetLevel(lvl)

	file := conf.Log.File
	if *logfile != "" {
		file = *logfile
	}
	if file != "" {
		f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			mainLog.WithError(err).Fatalf("Failed to open log file %q.", file)
		}
		defer f.Close()
		log.SetHandler(logging.NewMultiHandler(logging.NewHandler(os.Stderr), logging.NewHandler(f)))
	}

	if err := run(conf, *extra); err != nil {
		mainLog.WithError(err).Fatal("Demo failed")
	}
}

func run(conf *config.Config, extra int) error {
	reg := prometheus.NewRegistry()
	opts := append(conf.Options(),
		hashmap.WithLogger(log.WithField("name", "hashmap")),
		hashmap.WithObserver(hashmap.NewMetrics(reg)),
	)

	t, err := hashmap.New(opts...)
	if err != nil {
		return err
	}
	defer t.Close()

	keys := []string{"just", "12", "ds"}
	values := []string{"1", "123", "test"}
	for i, k := range keys {
		if err := t.Insert(k, values[i]); err != nil {
			return err
		}
	}
	for _, k := range keys {
		v, _ := t.Search(k)
		mainLog.Infof("Key: %s, element: %s", k, v)
	}

	mainLog.Infof("Update for `just`: %s", "wooo")
	if err := t.Insert("just", "wooo"); err != nil {
		return err
	}
	t.Delete("12")
	if _, ok := t.Search("12"); !ok {
		mainLog.Info("Deleted `12`: not found")
	}

	for i := 0; i < extra; i++ {
		if err := t.Insert(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i)); err != nil {
			return err
		}
	}
	mainLog.WithField("capacity", t.Cap()).Infof("Inserted %d extra keys", extra)
	for i := 0; i < extra; i++ {
		t.Delete(fmt.Sprintf("key-%d", i))
	}
	mainLog.WithField("capacity", t.Cap()).Infof("Deleted %d extra keys", extra)

	mainLog.Debug(spew.Sdump(t.Stats()))

	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				mainLog.Infof("%s%v = %v", mf.GetName(), labelString(m.GetLabel()), m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				mainLog.Infof("%s = %v", mf.GetName(), m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				mainLog.Infof("%s%v count=%d sum=%v", mf.GetName(), labelString(m.GetLabel()), h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	return nil
}

func labelString(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, l.GetName()+"="+l.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
