package main

import (
	"log"
	"os"
	"time"

	"github.com/andressommerhoff/benchreport/bench"
	"github.com/andressommerhoff/benchreport/config"
	"github.com/andressommerhoff/benchreport/logging"
	"github.com/andressommerhoff/benchreport/monitoring"
	"github.com/andressommerhoff/benchreport/reporting"
	"github.com/andressommerhoff/benchreport/workload"
)

func main() {
	conf := config.ReadConfig()

	var logger logging.Logger
	switch *conf.Logging.Driver {
	case "noop":
		logger = logging.NewNoopLogger()
	case "stdout":
		logger = logging.NewStdoutLogger()
	case "influxdb":
		logger = logging.NewInfluxDBLogger(
			*conf.Logging.InfluxDB.Host,
			*conf.Logging.InfluxDB.Token,
			*conf.Logging.InfluxDB.Org,
			*conf.Logging.InfluxDB.Bucket,
		)
	default:
		log.Fatalf("expected logging.driver one of {noop, stdout, influxdb}; got %s", *conf.Logging.Driver)
	}

	var collector monitoring.Collector
	if *conf.Run.CollectorWindow > 0 {
		collector = monitoring.NewTachymeterCollector(*conf.Run.CollectorWindow)
	} else {
		collector = monitoring.NewArrayCollector()
	}

	w := buildWorkload(conf)

	run := bench.NewRun(*conf.Run.Name, &bench.RunOptions{
		Repeat:    conf.Run.Repeat,
		DisableGC: conf.Run.DisableGC,
		Collector: collector,
	})

	loop := run.Begin()
	for loop.Next() {
		// Setup cost is folded into the loop ("setup"); the measured work
		// is reported on its own ("core").
		if err := run.Scope(bench.ScopeOptions{Class: bench.Inline}, w.Setup); err != nil {
			log.Fatalf("setup scope failed on iteration %d: err = %v", loop.Iteration(), err)
		}
		if err := run.Scope(bench.ScopeOptions{Class: bench.Separate}, w.Core); err != nil {
			log.Fatalf("core scope failed on iteration %d: err = %v", loop.Iteration(), err)
		}
	}

	rep := run.BuildReport()
	if err := reporting.Text(os.Stdout, rep); err != nil {
		log.Fatalf("expected reporting.Text() returns nil err; got err = %v", err)
	}

	for _, d := range rep.LoopSamples {
		logger.LogIterationTime(rep.Name, d.Seconds())
	}
	agg := collector.Aggregate()
	logger.LogAggregateIterationTimes(rep.Name,
		agg.P50.Seconds(), agg.P75.Seconds(), agg.P95.Seconds())
	for _, row := range rep.Rows {
		logger.LogReportRow(rep.Name, row)
	}
	logger.LogRunTotals(rep.Name,
		toMs(rep.TotalTime), toMs(rep.TotalIterTime), toMs(rep.Overhead), rep.OverheadPercent())

	if conf.Output.PlotPath != nil {
		if err := reporting.PlotIterations(rep.LoopSamples, rep.Name, *conf.Output.PlotPath); err != nil {
			log.Fatalf("expected reporting.PlotIterations() returns nil err; got err = %v", err)
		}
	}
}

func buildWorkload(conf *config.Config) workload.Workload {
	switch *conf.Workload.Driver {
	case "simulated":
		return workload.NewSimulated(
			*conf.Workload.Simulated.MeanMs,
			*conf.Workload.Simulated.StddevMs,
			*conf.Workload.Simulated.MinMs,
			*conf.Workload.Simulated.MaxMs,
		)
	case "http":
		return workload.NewHTTPGet(*conf.Workload.HTTP.URL)
	case "checksum":
		return workload.NewChecksum(*conf.Workload.Checksum.Bytes)
	default:
		log.Fatalf("expected workload.driver one of {simulated, http, checksum}; got %s", *conf.Workload.Driver)
		return nil
	}
}

func toMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
