package dto

import "time"

// ── 数据集状态 DTO ──

// DatasetStatus 单类数据集的快照状态
type DatasetStatus struct {
	Name        string     `json:"name"` // calendar | timetable | attendance | marks
	Rows        int64      `json:"rows"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// DatasetStatusResponse 当前学期的数据集状态响应
// 展示层以此轮询判断快照是否就绪/新鲜
type DatasetStatusResponse struct {
	Term     TermResponse    `json:"term"`
	Datasets []DatasetStatus `json:"datasets"`
}
