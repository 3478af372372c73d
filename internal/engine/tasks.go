package engine

import (
	"strings"

	"studyquest_backend/internal/model"
)

func cloneTasks(tasks []model.TaskItem) []model.TaskItem {
	return append(make([]model.TaskItem, 0, len(tasks)), tasks...)
}

// CompleteTask 将任务标记为完成并返回应发放的金币。
// 任务不存在或已完成时不做任何改变，奖励为 0。
func CompleteTask(tasks []model.TaskItem, id string) ([]model.TaskItem, int) {
	for i, t := range tasks {
		if t.ID != id {
			continue
		}
		if t.IsCompleted {
			return tasks, 0
		}
		next := cloneTasks(tasks)
		next[i].IsCompleted = true
		return next, CoinRewardTask
	}
	return tasks, 0
}

// DeleteTask 删除任务，不存在时原样返回
func DeleteTask(tasks []model.TaskItem, id string) []model.TaskItem {
	next := make([]model.TaskItem, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		return tasks
	}
	return next
}

// RescheduleTask 推迟到明天：当前没有按天存储的任务表，效果是从今天的列表中移除
func RescheduleTask(tasks []model.TaskItem, id string) []model.TaskItem {
	return DeleteTask(tasks, id)
}

// AddTask 追加一个新任务，id 和日期由调用方生成
func AddTask(tasks []model.TaskItem, draft model.TaskDraft, id, date string) ([]model.TaskItem, model.TaskItem, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return tasks, model.TaskItem{}, ErrTaskTitleRequired
	}
	category := draft.Category
	if category == "" {
		category = model.CategorySelf
	}
	if !category.IsValid() {
		return tasks, model.TaskItem{}, ErrInvalidCategory
	}

	item := model.TaskItem{
		ID:           id,
		Title:        title,
		Subtitle:     strings.TrimSpace(draft.Subtitle),
		TargetAmount: strings.TrimSpace(draft.TargetAmount),
		Category:     category,
		Date:         date,
	}
	next := cloneTasks(tasks)
	next = append(next, item)
	return next, item, nil
}

// TaskProgress 今日任务完成度
func TaskProgress(tasks []model.TaskItem) (completed, total int, percent float64) {
	total = len(tasks)
	for _, t := range tasks {
		if t.IsCompleted {
			completed++
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	return completed, total, float64(completed) / float64(total) * 100
}

// TasksByCategory 按分类分组，分类顺序固定
func TasksByCategory(tasks []model.TaskItem) map[model.Category][]model.TaskItem {
	grouped := make(map[model.Category][]model.TaskItem, len(model.Categories))
	for _, c := range model.Categories {
		grouped[c] = []model.TaskItem{}
	}
	for _, t := range tasks {
		grouped[t.Category] = append(grouped[t.Category], t)
	}
	return grouped
}
