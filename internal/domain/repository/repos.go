package repository

// Repos conjunto de repositorios atados a una misma transacción (o al pool).
type Repos struct {
	Orders       ManufacturingOrderRepository
	Lots         StockLotRepository
	Fragments    OrderFragmentRepository
	Consolidated ConsolidatedOrderRepository
	Audit        AuditRepository
}
