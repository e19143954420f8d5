package logging

import (
	"log"
	"time"

	"github.com/andressommerhoff/benchreport/bench"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// influxDBLogger logs the output to an external InfluxDB instance.
type influxDBLogger struct {
	client      influxdb2.Client
	asyncWriter api.WriteAPI
}

func NewInfluxDBLogger(baseURL, authToken, org, bucket string) *influxDBLogger {
	options := influxdb2.DefaultOptions()
	options.WriteOptions().SetBatchSize(1000)
	options.WriteOptions().SetFlushInterval(250)

	client := influxdb2.NewClientWithOptions(baseURL, authToken, options)
	writeAPI := client.WriteAPI(org, bucket)

	// Create a goroutine for reading and logging async write errors.
	errorsCh := writeAPI.Errors()
	go func() {
		for err := range errorsCh {
			log.Printf("influxdb2 logging async write error: %v\n", err)
		}
	}()

	return &influxDBLogger{
		client:      client,
		asyncWriter: writeAPI,
	}
}

func (l *influxDBLogger) LogIterationTime(run string, t float64) {
	p := influxdb2.NewPointWithMeasurement("bench_iteration_time").
		AddTag("run", run).
		AddField("t", t).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

func (l *influxDBLogger) LogAggregateIterationTimes(run string, p50 float64, p75 float64, p95 float64) {
	p := influxdb2.NewPointWithMeasurement("bench_iteration_percentiles").
		AddTag("run", run).
		AddField("p50", p50).
		AddField("p75", p75).
		AddField("p95", p95).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

func (l *influxDBLogger) LogReportRow(run string, row bench.Row) {
	p := influxdb2.NewPointWithMeasurement("bench_summary").
		AddTag("run", run).
		AddTag("class", row.Class).
		AddTag("section", row.Section).
		AddField("total_ms", row.TotalMs).
		AddField("n", row.Count).
		SetTime(time.Now())
	if row.AvgMs != nil {
		p.AddField("avg_ms", *row.AvgMs)
	}
	if row.MinMs != nil {
		p.AddField("min_ms", *row.MinMs)
	}
	l.asyncWriter.WritePoint(p)
}

func (l *influxDBLogger) LogRunTotals(run string, totalMs, iterMs, overheadMs, pct float64) {
	p := influxdb2.NewPointWithMeasurement("bench_run_totals").
		AddTag("run", run).
		AddField("total_ms", totalMs).
		AddField("iter_ms", iterMs).
		AddField("overhead_ms", overheadMs).
		AddField("overhead_pct", pct).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}
