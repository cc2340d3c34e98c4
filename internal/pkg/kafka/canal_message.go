package kafka

import "strconv"

const (
	INSERT = "INSERT"
	UPDATE = "UPDATE"
	DELETE = "DELETE"
)

// CanalMessage is the JSON payload canal pushes to kafka for a row change.
type CanalMessage struct {
	ID       int64    `json:"id"`
	Database string   `json:"database"`
	Table    string   `json:"table"`
	PKNames  []string `json:"pkNames"`
	IsDDL    bool     `json:"isDdl"`
	Type     string   `json:"type"`
	ES       int64    `json:"es"`
	TS       int64    `json:"ts"`
	SQL      string   `json:"sql"`

	// Data holds the rows after the change
	Data []map[string]interface{} `json:"data"`

	// Old holds the rows before the change
	Old []map[string]interface{} `json:"old"`

	SqlType   map[string]int    `json:"sqlType"`
	MysqlType map[string]string `json:"mysqlType"`
}

// StrToUint64 parses a canal row value. Canal serializes numeric columns as
// strings; a missing or malformed value yields 0.
func StrToUint64(v interface{}) uint64 {
	switch value := v.(type) {
	case string:
		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	case float64:
		return uint64(value)
	default:
		return 0
	}
}
