package analytics

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Zaidroid/palestine-pulse-sub002/model"
	"github.com/Zaidroid/palestine-pulse-sub002/stats"
	"github.com/Zaidroid/palestine-pulse-sub002/utils"
)

// AnomalyMonitor feeds a live-updating observation series to the anomaly
// detector. It keeps a bounded window of history in memory for the
// z-score baseline and makes sure each flagged point is reported once,
// so the anomaly panel does not re-alert on every refresh.
type AnomalyMonitor struct {
	threshold  float64
	windowSize int

	datas        []model.TimeValue
	newAnomalies []*model.SeriesAnomaly
	triggered    []*model.SeriesAnomaly

	lastTriggerTime    time.Time
	lastAppendDataTime time.Time
}

func NewAnomalyMonitor(thresholdStdDevs float64, windowSize int) *AnomalyMonitor {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	if windowSize > MaxDataSize {
		windowSize = MaxDataSize
	}
	return &AnomalyMonitor{
		threshold:  thresholdStdDevs,
		windowSize: windowSize,

		datas:        []model.TimeValue{},
		newAnomalies: []*model.SeriesAnomaly{},
		triggered:    []*model.SeriesAnomaly{},

		lastTriggerTime:    time.Time{},
		lastAppendDataTime: time.Time{},
	}
}

// the monitor caches history in memory, trim it cyclically so a
// long-running dashboard session won't grow without bound
func (m *AnomalyMonitor) rebalance(ctx context.Context) {
	if len(m.datas) < MaxDataSize {
		return
	}
	logger := utils.GetLogger(ctx)

	// keep at most windowSize values, and always leave room for the
	// point about to be appended
	reserve := m.windowSize
	if reserve >= len(m.datas) {
		reserve = len(m.datas) - 1
	}
	m.datas = append([]model.TimeValue{}, m.datas[len(m.datas)-reserve:]...)
	logger.Info("trimmed monitor history", zap.Int("reserved", len(m.datas)))
}

func (m *AnomalyMonitor) appendPoint(ctx context.Context, timeValue model.TimeValue) (*model.SeriesAnomaly, bool) {
	m.rebalance(ctx)

	m.datas = append(m.datas, timeValue)
	if len(m.datas) < MinDetectCount {
		return nil, false
	}

	start := 0
	if len(m.datas) > m.windowSize {
		start = len(m.datas) - m.windowSize
	}
	window := m.datas[start:]

	values := make([]float64, len(window))
	for i, v := range window {
		values[i] = v.Value
	}

	last := len(values) - 1
	for _, anomaly := range stats.DetectAnomalies(values, m.threshold) {
		if anomaly.Index != last {
			continue
		}
		seriesAnomaly := &model.SeriesAnomaly{
			Anomaly:   anomaly,
			TimeValue: timeValue,
		}
		m.newAnomalies = append(m.newAnomalies, seriesAnomaly)
		return seriesAnomaly, true
	}
	return nil, false
}

func (m *AnomalyMonitor) Append(ctx context.Context, timeValue model.TimeValue) (*model.SeriesAnomaly, bool) {
	return m.appendPoint(ctx, timeValue)
}

// AppendTimeSeriesData feeds every value newer than the last append,
// so replayed refreshes of the same series are harmless.
func (m *AnomalyMonitor) AppendTimeSeriesData(ctx context.Context, timeSeries *model.TimeSeries) {
	logger := utils.GetLogger(ctx)

	if timeSeries.IsEmpty() {
		return
	}

	foundCount := 0
	for _, timeValue := range timeSeries.Values {
		if !timeValue.Time.After(m.lastAppendDataTime) {
			continue
		}
		if _, found := m.appendPoint(ctx, timeValue); found {
			foundCount++
		}
		m.lastAppendDataTime = timeValue.Time
	}

	logger.Info(fmt.Sprintf("found %v anomalies", foundCount),
		zap.Any("labels", timeSeries.Labels))
}

// PopNewAnomalies drains the anomalies found since the last call.
// A series that floods the recent window with anomalies is suppressed,
// a broken feed should not page on every point.
func (m *AnomalyMonitor) PopNewAnomalies(ctx context.Context) []*model.SeriesAnomaly {
	logger := utils.GetLogger(ctx)

	if len(m.newAnomalies) == 0 {
		logger.Info("no new anomaly")
		return nil
	}

	// skip anomalies at or before the last reported point
	index := 0
	for ; index < len(m.newAnomalies); index++ {
		if m.newAnomalies[index].TimeValue.Time.After(m.lastTriggerTime) {
			break
		}
	}
	m.newAnomalies = m.newAnomalies[index:]

	if len(m.newAnomalies) == 0 {
		logger.Info("no new anomaly to report")
		return nil
	}

	res := m.newAnomalies
	m.newAnomalies = []*model.SeriesAnomaly{}
	m.lastTriggerTime = res[len(res)-1].TimeValue.Time

	m.triggered = append(m.triggered, res...)
	m.triggered = removeOldAnomalies(m.triggered)

	if m.suppressNoisy(ctx) {
		logger.Info("too many anomalies in recent window, skip report")
		return nil
	}

	logger.Info(fmt.Sprintf("%v new anomalies to report", len(res)))
	return res
}

func (m *AnomalyMonitor) suppressNoisy(ctx context.Context) bool {
	logger := utils.GetLogger(ctx)

	recentDuration := getRecentWindow()
	limit := getSuppressAnomalyCount()

	count := countAnomaliesInRecentTime(recentDuration, m.triggered) +
		countAnomaliesInRecentTime(recentDuration, m.newAnomalies)
	if count > limit {
		logger.Info("noisy series", zap.Any("recentWindow", recentDuration),
			zap.Int("limitCount", limit), zap.Int("anomalyCnt", count))
		return true
	}
	return false
}

func (m *AnomalyMonitor) Datas() []model.TimeValue {
	return m.datas
}

func (m *AnomalyMonitor) DataSize() int {
	return len(m.datas)
}

func (m *AnomalyMonitor) LastTimeValue() (model.TimeValue, bool) {
	if len(m.datas) == 0 {
		return model.TimeValue{}, false
	}
	return m.datas[len(m.datas)-1], true
}

func removeOldAnomalies(anomalies []*model.SeriesAnomaly) []*model.SeriesAnomaly {
	res := []*model.SeriesAnomaly{}

	startTime := time.Now().Add(-1 * getMaxAnomalyAge())
	for _, anomaly := range anomalies {
		if anomaly.TimeValue.Time.Before(startTime) {
			continue
		}
		res = append(res, anomaly)
	}
	return res
}

func countAnomaliesInRecentTime(duration time.Duration, anomalies []*model.SeriesAnomaly) int {
	startTime := time.Now().Add(-1 * duration)
	res := 0
	for _, anomaly := range anomalies {
		if anomaly.TimeValue.Time.After(startTime) {
			res += 1
		}
	}
	return res
}
