package tools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type Base struct {
	ID uint `excel:"编号"`
}

type row struct {
	Base
	Title   string    `excel:"标题"`
	Hidden  string    `excel:"-"`
	Count   int64     `excel:"报名人数"`
	Date    time.Time `excel:"日期"`
	Comment *string
}

func TestExportToExcel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	date := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := []row{
		{Base: Base{ID: 1}, Title: "Spring Career Fair", Hidden: "x", Count: 3, Date: date},
		{Base: Base{ID: 2}, Title: "Chess Night", Count: 0},
	}
	require.NoError(t, ExportToExcel(f, "events", rows))

	got, err := f.GetRows("events")
	require.NoError(t, err)
	require.Equal(t, []string{"编号", "标题", "报名人数", "日期", "Comment"}, got[0])
	require.Equal(t, []string{"1", "Spring Career Fair", "3", "2026-03-01 10:00:00"}, got[1])
	require.Equal(t, "Chess Night", got[2][1])

	data, err := WorkbookBytes(f)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestExportToExcelRejectsNonSlice(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.Error(t, ExportToExcel(f, "", row{}))
	require.Error(t, ExportToExcel(f, "", []int{1, 2}))
}
