package main

import (
	"mart/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	generator := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	generator.ApplyBasic(model.All()...)

	generator.Execute()
}
