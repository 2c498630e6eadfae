package dto

// RunResult summarises one pass of the reminder job.
type RunResult struct {
	TargetDate  string `json:"target_date"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	// Locked is true when another run held the job lock and nothing was done.
	Locked      bool  `json:"locked"`
	Matched     int   `json:"matched"`
	Sent        int   `json:"sent"`
	Failed      int   `json:"failed"`
	AlreadySent int   `json:"already_sent"`
	Raced       int   `json:"raced"`
	DurationMs  int64 `json:"duration_ms"`
}
