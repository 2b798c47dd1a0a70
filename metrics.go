package smpp

import (
	"fmt"

	"github.com/rcrowley/go-metrics"
)

const (
	metricDecodeRate      = "pdu-decode-rate"
	metricDecodeErrorRate = "pdu-decode-error-rate"
	metricPDUSize         = "pdu-size"
)

func getOrRegisterHistogram(name string, r metrics.Registry) metrics.Histogram {
	return r.GetOrRegister(name, func() metrics.Histogram {
		return metrics.NewHistogram(metrics.NewExpDecaySample(1028, 0.015))
	}).(metrics.Histogram)
}

func getMetricNameForCommand(name string, id CommandID) string {
	return fmt.Sprintf(name+"-for-command-%s", id)
}

func getOrRegisterCommandMeter(name string, id CommandID, r metrics.Registry) metrics.Meter {
	return metrics.GetOrRegisterMeter(getMetricNameForCommand(name, id), r)
}

// decodeMetrics holds the meters a single Decode call updates.
type decodeMetrics struct {
	decodeRate      metrics.Meter
	decodeErrorRate metrics.Meter
	pduSize         metrics.Histogram
}

func newDecodeMetrics(r metrics.Registry) *decodeMetrics {
	return &decodeMetrics{
		decodeRate:      metrics.GetOrRegisterMeter(metricDecodeRate, r),
		decodeErrorRate: metrics.GetOrRegisterMeter(metricDecodeErrorRate, r),
		pduSize:         getOrRegisterHistogram(metricPDUSize, r),
	}
}

func (m *decodeMetrics) record(size int, err error) {
	m.pduSize.Update(int64(size))
	if err != nil {
		m.decodeErrorRate.Mark(1)
		return
	}
	m.decodeRate.Mark(1)
}
