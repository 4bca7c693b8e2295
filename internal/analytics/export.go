package analytics

import (
	"campus-connect/tools"
	"context"
	"time"

	"github.com/xuri/excelize/v2"
)

type overviewRow struct {
	Metric string `excel:"Metric"`
	Value  int64  `excel:"Value"`
}

// Export 把汇总结果写成 xlsx，每部分一个工作表
func (s *Service) Export(ctx context.Context, now time.Time) ([]byte, error) {
	sum, err := s.Summary(ctx, now)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	overview := []overviewRow{
		{"Users", sum.UsersCount},
		{"Events", sum.EventsCount},
		{"Clubs", sum.ClubsCount},
	}
	sheets := []struct {
		name string
		data any
	}{
		{"Overview", overview},
		{"Events by month", sum.EventsByMonth},
		{"Top events", sum.TopEvents},
		{"Top clubs", sum.TopClubs},
	}
	for _, sh := range sheets {
		if err := tools.ExportToExcel(f, sh.name, sh.data); err != nil {
			return nil, err
		}
	}
	if idx, err := f.GetSheetIndex("Overview"); err == nil {
		f.SetActiveSheet(idx)
	}
	return tools.WorkbookBytes(f)
}
