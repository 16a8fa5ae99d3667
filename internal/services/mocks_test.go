package services

import (
	"club-management-platform/internal/models"
	"club-management-platform/internal/repositories"
)

// memCartStore is an in-memory CartStore for testing
type memCartStore struct {
	carts     map[int]*models.Cart
	saveCalls int
	loadErr   error
	saveErr   error
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[int]*models.Cart)}
}

func (m *memCartStore) Load(userID int) (*models.Cart, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if cart, exists := m.carts[userID]; exists {
		copied := &models.Cart{UserID: cart.UserID, Lines: append([]models.CartLine(nil), cart.Lines...)}
		return copied, nil
	}
	return &models.Cart{UserID: userID}, nil
}

func (m *memCartStore) Save(cart *models.Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCalls++
	m.carts[cart.UserID] = &models.Cart{UserID: cart.UserID, Lines: append([]models.CartLine(nil), cart.Lines...)}
	return nil
}

func (m *memCartStore) Clear(userID int) error {
	delete(m.carts, userID)
	return nil
}

// mockProductRepo is an in-memory ProductRepository
type mockProductRepo struct {
	products map[string]*models.Product
}

func newMockProductRepo(products ...*models.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[string]*models.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) GetByID(id string) (*models.Product, error) {
	if p, exists := m.products[id]; exists {
		copied := *p
		return &copied, nil
	}
	return nil, models.ErrProductNotFound
}

func (m *mockProductRepo) UpdateStock(id string, stock int) error {
	p, exists := m.products[id]
	if !exists {
		return models.ErrProductNotFound
	}
	p.Stock = stock
	return nil
}

func (m *mockProductRepo) List() ([]*models.Product, error) {
	out := make([]*models.Product, 0, len(m.products))
	for _, p := range m.products {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

// mockTicketRepo is an in-memory TicketRepository
type mockTicketRepo struct {
	tickets map[string]*models.MatchTicket
}

func newMockTicketRepo(tickets ...*models.MatchTicket) *mockTicketRepo {
	m := &mockTicketRepo{tickets: make(map[string]*models.MatchTicket)}
	for _, tk := range tickets {
		m.tickets[tk.ID] = tk
	}
	return m
}

func (m *mockTicketRepo) GetByID(id string) (*models.MatchTicket, error) {
	if tk, exists := m.tickets[id]; exists {
		copied := *tk
		return &copied, nil
	}
	return nil, models.ErrTicketNotFound
}

func (m *mockTicketRepo) GetByMatchAndCategory(matchID, seatCategory string) (*models.MatchTicket, error) {
	for _, tk := range m.tickets {
		if tk.MatchID == matchID && tk.SeatCategory == seatCategory {
			copied := *tk
			return &copied, nil
		}
	}
	return nil, models.ErrTicketNotFound
}

func (m *mockTicketRepo) UpdateAvailability(id string, available int) error {
	tk, exists := m.tickets[id]
	if !exists {
		return models.ErrTicketNotFound
	}
	tk.AvailableTickets = available
	return nil
}

func (m *mockTicketRepo) ListByMatch(matchID string) ([]*models.MatchTicket, error) {
	var out []*models.MatchTicket
	for _, tk := range m.tickets {
		if tk.MatchID == matchID {
			copied := *tk
			out = append(out, &copied)
		}
	}
	return out, nil
}

// mockMatchRepo is an in-memory MatchRepository
type mockMatchRepo struct {
	matches map[string]*models.Match
}

func newMockMatchRepo(matches ...*models.Match) *mockMatchRepo {
	m := &mockMatchRepo{matches: make(map[string]*models.Match)}
	for _, match := range matches {
		m.matches[match.ID] = match
	}
	return m
}

func (m *mockMatchRepo) GetByID(id string) (*models.Match, error) {
	if match, exists := m.matches[id]; exists {
		return match, nil
	}
	return nil, models.ErrMatchNotFound
}

func (m *mockMatchRepo) List() ([]*models.Match, error) {
	out := make([]*models.Match, 0, len(m.matches))
	for _, match := range m.matches {
		out = append(out, match)
	}
	return out, nil
}

// mockOrderWriter simulates the transactional create-with-decrements
// against the same in-memory catalog the repos read from: either every
// decrement succeeds and the order is created, or nothing changes.
type mockOrderWriter struct {
	productRepo *mockProductRepo
	ticketRepo  *mockTicketRepo
	created     []*models.Order
	nextID      int
}

func newMockOrderWriter(productRepo *mockProductRepo, ticketRepo *mockTicketRepo) *mockOrderWriter {
	return &mockOrderWriter{productRepo: productRepo, ticketRepo: ticketRepo, nextID: 1}
}

func (m *mockOrderWriter) CreateWithStockDecrements(order *models.Order, products, tickets []repositories.StockDecrement) (*models.Order, error) {
	for _, dec := range products {
		p, exists := m.productRepo.products[dec.ItemID]
		if !exists {
			return nil, models.ErrProductNotFound
		}
		if p.Stock < dec.Quantity {
			return nil, &models.InsufficientStockError{ItemID: dec.ItemID, Available: p.Stock, Requested: dec.Quantity}
		}
	}
	for _, dec := range tickets {
		tk, exists := m.ticketRepo.tickets[dec.ItemID]
		if !exists {
			return nil, models.ErrTicketNotFound
		}
		if tk.AvailableTickets < dec.Quantity {
			return nil, &models.InsufficientStockError{ItemID: dec.ItemID, Available: tk.AvailableTickets, Requested: dec.Quantity}
		}
	}

	for _, dec := range products {
		m.productRepo.products[dec.ItemID].Stock -= dec.Quantity
	}
	for _, dec := range tickets {
		m.ticketRepo.tickets[dec.ItemID].AvailableTickets -= dec.Quantity
	}

	created := *order
	created.ID = m.nextID
	m.nextID++
	created.OrderNumber = models.GenerateOrderNumber()
	created.Status = models.OrderPending
	m.created = append(m.created, &created)
	return &created, nil
}

// mockOrderRepo is an in-memory OrderRepository
type mockOrderRepo struct {
	orders map[int]*models.Order
}

func newMockOrderRepo(orders ...*models.Order) *mockOrderRepo {
	m := &mockOrderRepo{orders: make(map[int]*models.Order)}
	for _, o := range orders {
		m.orders[o.ID] = o
	}
	return m
}

func (m *mockOrderRepo) GetByID(id int) (*models.Order, error) {
	if o, exists := m.orders[id]; exists {
		return o, nil
	}
	return nil, models.ErrOrderNotFound
}

func (m *mockOrderRepo) GetByUser(userID int) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) UpdateStatus(id int, status models.OrderStatus) (*models.Order, error) {
	o, exists := m.orders[id]
	if !exists {
		return nil, models.ErrOrderNotFound
	}
	if err := models.ValidateOrderStatus(status); err != nil {
		return nil, err
	}
	if !o.CanTransitionTo(status) {
		return nil, &models.ValidationError{Field: "status", Message: "invalid status transition"}
	}
	o.Status = status
	return o, nil
}

// mockUserRepo is an in-memory UserRepository
type mockUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int]*models.User), nextID: 1}
}

func (m *mockUserRepo) Create(req *models.UserCreateRequest, passwordHash string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == req.Email {
			return nil, models.ErrDuplicateEntry
		}
	}
	user := &models.User{
		ID:           m.nextID,
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
	}
	m.nextID++
	m.users[user.ID] = user
	return user, nil
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	if u, exists := m.users[id]; exists {
		return u, nil
	}
	return nil, models.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrUserNotFound
}
