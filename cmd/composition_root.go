package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateJobOrderCommandHandler() commands.CreateJobOrderCommandHandler {
	var f commands.JobOrderUoWFactory = FuncJobOrderUoWFactory(func() commands.JobOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignTransportCommandHandler() commands.AssignTransportCommandHandler {
	var f commands.JobOrderUoWFactory = FuncJobOrderUoWFactory(func() commands.JobOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTransportCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceJobOrderCommandHandler() commands.AdvanceJobOrderCommandHandler {
	var f commands.JobOrderUoWFactory = FuncJobOrderUoWFactory(func() commands.JobOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceJobOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateManifestCommandHandler() commands.CreateManifestCommandHandler {
	var f commands.ManifestUoWFactory = FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateManifestCommandHandler(f)
}

func (c *CompositionRoot) CreateBindManifestTransportCommandHandler() commands.BindManifestTransportCommandHandler {
	var f commands.ManifestUoWFactory = FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBindManifestTransportCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceManifestCommandHandler() commands.AdvanceManifestCommandHandler {
	var f commands.ManifestUoWFactory = FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceManifestCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelManifestCommandHandler() commands.CancelManifestCommandHandler {
	var f commands.ManifestUoWFactory = FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelManifestCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryOrderCommandHandler() commands.CreateDeliveryOrderCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryOrderCommandHandler(f, services.NewTransportResolver())
}

func (c *CompositionRoot) CreateAdvanceDeliveryOrderCommandHandler() commands.AdvanceDeliveryOrderCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveryOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelDeliveryOrderCommandHandler() commands.CancelDeliveryOrderCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateInvoiceCommandHandler() commands.UpdateInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelInvoiceCommandHandler() commands.CancelInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepOverdueInvoicesCommandHandler() commands.SweepOverdueInvoicesCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepOverdueInvoicesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetJobOrderQueryHandler() queries.GetJobOrderQueryHandler {
	return queries.NewGetJobOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryOrdersQueryHandler() queries.GetDeliveryOrdersQueryHandler {
	return queries.NewGetDeliveryOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOutstandingInvoicesQueryHandler() queries.GetOutstandingInvoicesQueryHandler {
	return queries.NewGetOutstandingInvoicesQueryHandler(c.gormDB)
}

type FuncJobOrderUoWFactory func() commands.JobOrderUoW

func (f FuncJobOrderUoWFactory) Create() commands.JobOrderUoW {
	return f()
}

type FuncManifestUoWFactory func() commands.ManifestUoW

func (f FuncManifestUoWFactory) Create() commands.ManifestUoW {
	return f()
}

type FuncDeliveryOrderUoWFactory func() commands.DeliveryOrderUoW

func (f FuncDeliveryOrderUoWFactory) Create() commands.DeliveryOrderUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}
