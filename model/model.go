package model

import (
	"fmt"
	"time"
)

type TimeValue struct {
	Time  time.Time `json:"t,omitempty"`
	Value float64   `json:"v,omitempty"`
}

func (v *TimeValue) Less(timeValue TimeValue) bool {
	return v.Value < timeValue.Value
}

func (v *TimeValue) Before(timeValue TimeValue) bool {
	return v.Time.Before(timeValue.Time)
}

type TimeSeries struct {
	// Labels contains label key -> label value, like "region": "north-gaza"
	Labels map[string]string
	Values []TimeValue
}

func (s *TimeSeries) DebugString() string {
	res := fmt.Sprintf("labels: %+v, valueCount: %+v", s.Labels, len(s.Values))
	return res
}

func (s *TimeSeries) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Values) == 0
}

// Floats returns the observation values in time order.
func (s *TimeSeries) Floats() []float64 {
	if s == nil {
		return nil
	}
	res := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		res = append(res, v.Value)
	}
	return res
}
