package prediction

import (
	"fmt"
	"testing"
)

func defaultProjector() Projector {
	return NewProjector(DefaultThreshold, DefaultSearchCap)
}

func TestProject_ExactlyAtThreshold(t *testing.T) {
	// 30/40 = 75.00%：达标（含等于），无需补课，也无余量可缺
	r := defaultProjector().Project(40, 30)

	if r.Invalid {
		t.Fatal("合法输入不应标记 Invalid")
	}
	if r.CurrentPercentage != "75.00" {
		t.Errorf("期望 75.00, 实际 %s", r.CurrentPercentage)
	}
	if r.Percentage != 75.0 {
		t.Errorf("数值百分比期望 75.0, 实际 %v", r.Percentage)
	}
	if r.ClassesNeeded != 0 {
		t.Errorf("期望 ClassesNeeded=0, 实际 %d", r.ClassesNeeded)
	}
	if r.CanSkip != 0 {
		t.Errorf("期望 CanSkip=0 (30 - 0.75*40 = 0), 实际 %d", r.CanSkip)
	}
	if !r.AboveThreshold {
		t.Error("75.00% 应视为达标")
	}
}

func TestProject_BelowThreshold_BoundaryTightness(t *testing.T) {
	// 28/40 = 70.00%
	r := defaultProjector().Project(40, 28)

	if r.CurrentPercentage != "70.00" {
		t.Errorf("期望 70.00, 实际 %s", r.CurrentPercentage)
	}
	if r.AboveThreshold {
		t.Error("70.00% 不应达标")
	}
	if r.ClassesNeeded <= 0 {
		t.Fatalf("期望 ClassesNeeded>0, 实际 %d", r.ClassesNeeded)
	}

	// 边界严格性：k 达标而 k-1 不达标
	k := r.ClassesNeeded
	if 100*float64(28+k)/float64(40+k) < 75 {
		t.Errorf("ClassesNeeded=%d 代入后仍未达标", k)
	}
	if 100*float64(28+k-1)/float64(40+k-1) >= 75 {
		t.Errorf("ClassesNeeded=%d 不是最小解", k)
	}
}

func TestProject_InvalidInputs(t *testing.T) {
	p := defaultProjector()

	cases := []struct {
		total, attended int
	}{
		{0, 0},
		{0, 5},
		{-3, 2},
		{10, -1},
	}
	for _, c := range cases {
		r := p.Project(c.total, c.attended)
		if !r.Invalid {
			t.Errorf("Project(%d, %d) 应标记 Invalid", c.total, c.attended)
		}
		if r.ClassesNeeded != 0 || r.CanSkip != 0 || r.AboveThreshold {
			t.Errorf("Project(%d, %d) 非法输入应返回安全零值", c.total, c.attended)
		}
		if r.CurrentPercentage != "0.00" {
			t.Errorf("Project(%d, %d) 期望百分比 0.00, 实际 %s", c.total, c.attended, r.CurrentPercentage)
		}
	}
}

func TestProject_PercentageFormula(t *testing.T) {
	p := defaultProjector()

	cases := []struct {
		total, attended int
		want            string
	}{
		{40, 30, "75.00"},
		{40, 28, "70.00"},
		{3, 1, "33.33"},
		{3, 2, "66.67"},
		{60, 60, "100.00"},
		{7, 0, "0.00"},
	}
	for _, c := range cases {
		r := p.Project(c.total, c.attended)
		if r.CurrentPercentage != c.want {
			t.Errorf("Project(%d, %d): 期望 %s, 实际 %s", c.total, c.attended, c.want, r.CurrentPercentage)
		}
		want := fmt.Sprintf("%.2f", 100*float64(c.attended)/float64(c.total))
		if r.CurrentPercentage != want {
			t.Errorf("Project(%d, %d): 两位小数渲染不一致", c.total, c.attended)
		}
	}
}

func TestProject_ClassesNeededMonotonic(t *testing.T) {
	p := defaultProjector()

	// 固定总课时，出勤数上升时 ClassesNeeded 非严格递减；达标后恒为 0
	const total = 40
	prev := -1
	for attended := 0; attended <= total; attended++ {
		r := p.Project(total, attended)
		if prev >= 0 && r.ClassesNeeded > prev {
			t.Fatalf("attended=%d 时 ClassesNeeded=%d 大于前值 %d", attended, r.ClassesNeeded, prev)
		}
		if 100*float64(attended)/float64(total) >= 75 && r.ClassesNeeded != 0 {
			t.Errorf("attended=%d 已达标, ClassesNeeded 应为 0, 实际 %d", attended, r.ClassesNeeded)
		}
		prev = r.ClassesNeeded
	}
}

func TestProject_CanSkipNeverNegativeAndPure(t *testing.T) {
	p := defaultProjector()

	for total := 1; total <= 50; total++ {
		for attended := 0; attended <= total; attended++ {
			r1 := p.Project(total, attended)
			r2 := p.Project(total, attended)
			if r1.CanSkip < 0 {
				t.Fatalf("Project(%d, %d).CanSkip 为负: %d", total, attended, r1.CanSkip)
			}
			// 纯函数：重复调用结果一致
			if r1 != r2 {
				t.Fatalf("Project(%d, %d) 两次调用结果不一致", total, attended)
			}
		}
	}
}

func TestProject_SearchCapMarksUnreachable(t *testing.T) {
	// 搜索上限极小，未达标时应标记 Unreachable 而不是死循环
	p := Projector{Threshold: 75, SearchCap: 1}
	r := p.Project(40, 0)

	if !r.Unreachable {
		t.Error("达到搜索上限时应标记 Unreachable")
	}
	if r.ClassesNeeded != 0 {
		t.Errorf("Unreachable 时 ClassesNeeded 应为安全零值, 实际 %d", r.ClassesNeeded)
	}
}

func TestNewProjector_ZeroValueFallback(t *testing.T) {
	p := NewProjector(0, 0)
	if p.Threshold != DefaultThreshold {
		t.Errorf("期望默认及格线 %v, 实际 %v", DefaultThreshold, p.Threshold)
	}
	if p.SearchCap != DefaultSearchCap {
		t.Errorf("期望默认搜索上限 %d, 实际 %d", DefaultSearchCap, p.SearchCap)
	}
}
