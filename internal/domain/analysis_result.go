package domain

type AnalysisResult struct {
	Status         Status         `json:"status"`
	FilesProcessed int            `json:"files_processed,omitempty"`
	Metrics        Metrics        `json:"metrics"`
	Recommendation Recommendation `json:"recommendation"`
	TableData      TableData      `json:"table_data"`
	FileSummaries  []FileSummary  `json:"file_summaries,omitempty"`
	DownloadURL    string         `json:"download_url"`
	SummaryURL     string         `json:"summary_url,omitempty"`
}

type Metrics struct {
	Savings        string             `json:"savings"`
	ROI            string             `json:"roi"`
	Risk           Risk               `json:"risk"`
	Breakeven      string             `json:"breakeven"`
	TotalRows      int                `json:"total_rows"`
	NumericColumns int                `json:"numeric_columns"`
	AvgValues      map[string]float64 `json:"avg_values"`
}

type Recommendation struct {
	Type RecommendationType `json:"type"`
	Text string             `json:"text"`
}

type TableData struct {
	Headers   []string            `json:"headers"`
	Rows      []map[string]string `json:"rows"`
	TotalRows *int                `json:"total_rows,omitempty"`
}

type FileSummary struct {
	File           string `json:"file"            db:"name"`
	Rows           int    `json:"rows"            db:"rows"`
	Columns        int    `json:"columns"         db:"columns"`
	NumericColumns int    `json:"numeric_columns" db:"numeric_columns"`
}
