package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryConstructors(t *testing.T) {
	assert.NotNil(t, NewUserRepository(nil))
	assert.NotNil(t, NewProductRepository(nil))
	assert.NotNil(t, NewMatchRepository(nil))
	assert.NotNil(t, NewTicketRepository(nil))
	assert.NotNil(t, NewCartRepository(nil))
	assert.NotNil(t, NewOrderRepository(nil))
}
