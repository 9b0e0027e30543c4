package utils

import "github.com/MrSnakeDoc/urlb/internal/logger"

type URLRow struct {
	Name   string
	URL    string
	Status string
}

func CreateURLTable(title string, rows []URLRow) {
	if title != "" {
		logger.Info("%s", title)
	}

	table := logger.CreateTable([]string{"Name", "URL", "Status"})

	for _, row := range rows {
		err := table.Append([]string{row.Name, row.URL, row.Status})
		if err != nil {
			logger.LogError("Error appending to table: %v", err)
			return
		}
	}

	err := table.Render()
	if err != nil {
		logger.LogError("Error rendering table: %v", err)
		return
	}
}
