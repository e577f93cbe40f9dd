package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// CSVWriter 以 CSV 格式逐条写出快照
// 第一次写入带表头，之后只写数据行
type CSVWriter struct {
	w             io.Writer
	headerWritten bool
}

// NewCSVWriter 创建 CSV 写出器
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w}
}

// Write 写出一条或多条快照
func (cw *CSVWriter) Write(snapshots ...Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	if !cw.headerWritten {
		if err := gocsv.Marshal(snapshots, cw.w); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		cw.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(snapshots, cw.w); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}
