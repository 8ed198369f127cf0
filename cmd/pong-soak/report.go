package main

import (
	"io"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Matches  int
	MaxScore int
	Seed     uint64

	// Results
	Completed     int
	Stalled       int
	TimedOut      bool
	PlayerWins    int
	AIWins        int
	Hits          int64
	Notifications int
	Violations    int
	TotalTicks    int64
	TotalTime     time.Duration
	UpdateTime    Stats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min, s.Max = s.Samples[0], s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// HitsPerMatch is the average number of paddle hits in a completed match.
func (r *Report) HitsPerMatch() float64 {
	if r.Completed == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Completed)
}

const reportTemplate = `
# Pong Soak Report

## Run
- **Matches:** {{.Completed}} of {{.Matches}} completed{{if .Stalled}}, {{.Stalled}} stalled{{end}}{{if .TimedOut}} (timed out){{end}}
- **Max Score:** {{.MaxScore}}
- **Seed:** {{.Seed}}

## Outcome
- **Player Wins:** {{.PlayerWins}}
- **AI Wins:** {{.AIWins}}
- **Hits Per Match:** {{printf "%.1f" .HitsPerMatch}}
- **Notifications:** {{.Notifications}}
- **Invariant Violations:** {{.Violations}}

## Performance
- **Total Ticks:** {{.TotalTicks}}
- **Total Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
`

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

func (r *Report) Generate(w io.Writer) error {
	return reportTmpl.Execute(w, r)
}
