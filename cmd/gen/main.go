package main

import (
	"stampcard/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CustomerModel{},
		model.VisitModel{},
		model.CouponModel{},
		model.PollModel{},
		model.PollResponseModel{},
		model.NoticeModel{},
		model.NoticeReadModel{},
		model.ReportModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
