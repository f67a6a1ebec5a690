package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"acadpulse/backend/config"
	"acadpulse/backend/internal/dto"
	"acadpulse/backend/internal/prediction"
	"acadpulse/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoAttendance = errors.New("该学期暂无出勤数据")
	ErrExportNoLeaveDays  = errors.New("范围内没有影响该课程的请假日")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 出勤报表导出为 Excel (.xlsx)，每门课程一行，附推算结果
//   - 请假计划导出为 iCalendar (.ics)，范围内损失课时的日期各生成一个全天事件
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportAttendance 导出学期出勤报表为 Excel
	ExportAttendance(ctx context.Context, termID string) (*bytes.Buffer, string, error)
	// ExportLeavePlan 跑一次完整预测并把受影响的请假日导出为 ICS 日历
	ExportLeavePlan(ctx context.Context, req *dto.PredictionRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg        *config.Config
	repo       *repository.Repository
	prediction PredictionService
	logger     *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(
	cfg *config.Config,
	repo *repository.Repository,
	predictionSvc PredictionService,
	logger *zap.Logger,
) ExportService {
	return &exportService{
		cfg:        cfg,
		repo:       repo,
		prediction: predictionSvc,
		logger:     logger,
	}
}

// ═══════════════════════════════════════════════════════════
// ExportAttendance — 导出出勤报表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet，每门课程一行
//   - 列：课程代码 / 课程名称 / 教师 / 已开课时 / 缺勤 / 出勤 / 出勤率 /
//     还可缺课数 / 还需连续出勤数
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportAttendance(ctx context.Context, termID string) (*bytes.Buffer, string, error) {
	// 1. 解析学期
	term, err := resolveTerm(ctx, s.repo, termID)
	if err != nil {
		return nil, "", err
	}

	// 2. 查询出勤记录
	records, err := s.repo.Attendance.ListByTerm(ctx, term.TermID)
	if err != nil {
		s.logger.Error("查询出勤失败", zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoAttendance
	}

	projector := prediction.NewProjector(s.cfg.Prediction.Threshold, s.cfg.Prediction.SearchCap)

	// 3. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Attendance"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 36)
	f.SetColWidth(sheetName, "C", "C", 24)
	f.SetColWidth(sheetName, "D", "I", 12)

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	// 出勤率写数值而非文本，便于表格内排序与筛选；内置格式 2 = "0.00"
	pctStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 2})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — Attendance Report", term.Name))
	f.MergeCell(sheetName, "A1", "I1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{
		"Course Code", "Course Title", "Faculty",
		"Conducted", "Absent", "Attended", "Percentage",
		"Can Skip", "Classes Needed",
	}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 2), h)
		f.SetCellStyle(sheetName, cell(colName(i), 2), cell(colName(i), 2), headerStyle)
	}

	// 数据行
	row := 3
	for i := range records {
		r := &records[i]
		result := projector.Project(r.HoursConducted, r.HoursAttended())

		f.SetCellValue(sheetName, cell("A", row), r.CourseCode)
		f.SetCellValue(sheetName, cell("B", row), r.CourseTitle)
		f.SetCellValue(sheetName, cell("C", row), r.Faculty)
		f.SetCellValue(sheetName, cell("D", row), r.HoursConducted)
		f.SetCellValue(sheetName, cell("E", row), r.HoursAbsent)
		f.SetCellValue(sheetName, cell("F", row), r.HoursAttended())
		f.SetCellValue(sheetName, cell("G", row), result.Percentage)
		f.SetCellStyle(sheetName, cell("G", row), cell("G", row), pctStyle)
		f.SetCellValue(sheetName, cell("H", row), result.CanSkip)
		if result.Unreachable {
			f.SetCellValue(sheetName, cell("I", row), "-")
		} else {
			f.SetCellValue(sheetName, cell("I", row), result.ClassesNeeded)
		}
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("attendance_%s.xlsx", term.Name)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportLeavePlan — 导出请假计划为 ICS 日历
// ═══════════════════════════════════════════════════════════
//
// 复用预测管线：范围内每个损失该课程课时的日期生成一个全天 VEVENT，
// 事件描述附带推算后的出勤率，方便导入个人日历后对照。

func (s *exportService) ExportLeavePlan(ctx context.Context, req *dto.PredictionRequest) (*bytes.Buffer, string, error) {
	resp, err := s.prediction.Predict(ctx, req)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//acadpulse//leave-plan//EN")

	now := time.Now()
	count := 0
	for _, day := range resp.Days {
		if !day.Affects {
			continue
		}
		d, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			continue
		}
		count++

		event := cal.AddEvent(fmt.Sprintf("leave-%s-%d@acadpulse", day.Date, count))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(d)
		event.SetAllDayEndAt(d.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("请假：%s (Day %s)", resp.CourseTitle, day.DayOrder))
		event.SetDescription(fmt.Sprintf(
			"课程 %s 在该日损失一节课。计划执行后出勤率推算为 %s%%。",
			resp.CourseTitle, resp.Projection.CurrentPercentage,
		))
	}
	if count == 0 {
		return nil, "", ErrExportNoLeaveDays
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("leave_plan_%s.ics", resp.CourseCode)
	if resp.CourseCode == "" {
		filename = "leave_plan.ics"
	}
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
