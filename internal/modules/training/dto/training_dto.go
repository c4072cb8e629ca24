package dto

import "anoa.com/binbeacon/internal/entity"

type SubmitQuizInput struct {
	// Answers maps question id to the selected option index (0-2).
	Answers map[string]int `json:"answers" binding:"required"`
}

type QuizResult struct {
	ModuleID       string `json:"module_id"`
	TotalQuestions int    `json:"total_questions"`
	Correct        int    `json:"correct"`
	Score          int    `json:"score"`
	Completed      bool   `json:"completed"`
}

type ProgressOverview struct {
	Modules           []ModuleProgress `json:"modules"`
	CompletedCount    int              `json:"completed_count"`
	TotalCount        int              `json:"total_count"`
	OverallCompletion int              `json:"overall_completion"`
}

type ModuleProgress struct {
	Module    entity.TrainingModule `json:"module"`
	Completed bool                  `json:"completed"`
	Score     int                   `json:"score"`
}
