package approval

var defaultItems = []Item{
	{ID: 1, Name: "Banco Aurora", Type: "Conta digital PJ", Status: StatusPending},
	{ID: 2, Name: "Grupo Horizonte", Type: "Cartão corporativo", Status: StatusPending},
	{ID: 3, Name: "Comércio Prisma", Type: "Antecipação de recebíveis", Status: StatusApproved},
	{ID: 4, Name: "Cooperativa Atlas", Type: "Financiamento agrícola", Status: StatusApproved},
	{ID: 5, Name: "Indústria Sol", Type: "Conta digital PJ", Status: StatusPending},
	{ID: 6, Name: "Transportes Vega", Type: "Cartão corporativo", Status: StatusPending},
	{ID: 7, Name: "Loja Prisma", Type: "Antecipação de recebíveis", Status: StatusApproved},
	{ID: 8, Name: "Fazenda Aurora", Type: "Financiamento agrícola", Status: StatusApproved},
	{ID: 9, Name: "TechNova", Type: "Conta digital PJ", Status: StatusPending},
	{ID: 10, Name: "Logística Delta", Type: "Cartão corporativo", Status: StatusPending},
	{ID: 11, Name: "Varejo Prisma", Type: "Antecipação de recebíveis", Status: StatusApproved},
	{ID: 12, Name: "Agropecuária Sol", Type: "Financiamento agrícola", Status: StatusApproved},
	{ID: 13, Name: "Construtora Vega", Type: "Conta digital PJ", Status: StatusPending},
	{ID: 14, Name: "Serviços Atlas", Type: "Cartão corporativo", Status: StatusPending},
	{ID: 15, Name: "Comércio Delta", Type: "Antecipação de recebíveis", Status: StatusApproved},
	{ID: 16, Name: "Fazenda Horizonte", Type: "Financiamento agrícola", Status: StatusApproved},
}

// DefaultItems returns a fresh copy of the built-in first-run dataset.
func DefaultItems() []Item {
	out := make([]Item, len(defaultItems))
	copy(out, defaultItems)
	return out
}
