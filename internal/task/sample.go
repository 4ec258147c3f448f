package task

import "time"

// SampleTasks returns the demo tasks seeded when the task collection is
// empty at first load. Due dates are relative to now; IDs and creation
// times are assigned by the store when the samples are added.
func SampleTasks(now time.Time) []Task {
	day := 24 * time.Hour
	tomorrow := now.Add(1 * day)
	inThree := now.Add(3 * day)
	inFive := now.Add(5 * day)
	twoAgo := now.Add(-2 * day)

	return []Task{
		{
			Title:       "Finalizar relatório de vendas",
			Description: "Completar análise do Q4 para a reunião de amanhã",
			Priority:    PriorityHigh,
			Category:    CategoryWork,
			DueDate:     &tomorrow,
		},
		{
			Title:       "Agendar consulta médica",
			Description: "Check-up anual com Dr. Silva",
			Priority:    PriorityMedium,
			Category:    CategoryHealth,
			DueDate:     &inFive,
		},
		{
			Title:       "Comprar presentes de aniversário",
			Description: "Para a festa de sábado",
			Priority:    PriorityLow,
			Category:    CategoryPersonal,
			DueDate:     &inThree,
		},
		{
			Title:       "Pagar conta de luz",
			Description: "Vence dia 15",
			Completed:   true,
			Priority:    PriorityHigh,
			Category:    CategoryErrands,
			DueDate:     &twoAgo,
		},
	}
}
