package main

import (
	"timeclock/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.EmployeeModel{},
		model.AllowedLocationModel{},
		model.PunchRecordModel{},
		model.EmployeeDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
