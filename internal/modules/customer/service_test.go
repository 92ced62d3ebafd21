package customer

import (
	"context"
	"testing"

	"github.com/georgemunganga/emt-api/internal/modules/user"
	"github.com/georgemunganga/emt-api/internal/platform/errs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tyler = &user.User{ID: uuid.MustParse("9a1d2c3b-4e5f-4a6b-8c7d-1e2f3a4b5c6d"), FirstName: "Tyler", LastName: "Carpenter"}

func newTestService() (Service, *memoryRepository) {
	repo := newMemoryRepository()
	return NewService(repo, newStubUsers(tyler)), repo
}

func TestCreateCustomer(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		UserID: tyler.ID.String(), PhoneNumber: "615-555-0100", Address: "1 Main St", IsMerchant: true,
	})
	require.NoError(t, err)

	assert.Equal(t, tyler.ID, c.UserID)
	assert.Equal(t, "Tyler Carpenter", c.FullName())
	assert.True(t, c.IsMerchant)

	got, err := svc.GetCustomer(context.Background(), c.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "615-555-0100", got.PhoneNumber)
}

func TestCreateCustomerRequiresExistingUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		UserID: uuid.NewString(), PhoneNumber: "1", Address: "x",
	})
	assert.ErrorIs(t, err, errs.ErrInvalidReference)
}

func TestCreateCustomerOnePerUser(t *testing.T) {
	svc, _ := newTestService()
	req := CreateCustomerRequest{UserID: tyler.ID.String(), PhoneNumber: "1", Address: "x"}

	_, err := svc.CreateCustomer(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateCustomer(context.Background(), req)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestUpdateCustomerOverwritesFields(t *testing.T) {
	svc, _ := newTestService()
	c, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		UserID: tyler.ID.String(), PhoneNumber: "1", Address: "x", IsMerchant: true,
	})
	require.NoError(t, err)

	err = svc.UpdateCustomer(context.Background(), c.ID.String(), UpdateCustomerRequest{PhoneNumber: "2", Address: "y"})
	require.NoError(t, err)

	got, err := svc.GetCustomer(context.Background(), c.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "2", got.PhoneNumber)
	assert.Equal(t, "y", got.Address)
	assert.False(t, got.IsMerchant)

	err = svc.UpdateCustomer(context.Background(), uuid.NewString(), UpdateCustomerRequest{PhoneNumber: "2", Address: "y"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteCustomer(t *testing.T) {
	svc, repo := newTestService()
	c, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{UserID: tyler.ID.String(), PhoneNumber: "1", Address: "x"})
	require.NoError(t, err)

	repo.referenced[c.ID] = true
	assert.ErrorIs(t, svc.DeleteCustomer(context.Background(), c.ID.String()), errs.ErrConflict)

	repo.referenced[c.ID] = false
	require.NoError(t, svc.DeleteCustomer(context.Background(), c.ID.String()))

	assert.ErrorIs(t, svc.DeleteCustomer(context.Background(), c.ID.String()), errs.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteCustomer(context.Background(), "nope"), errs.ErrNotFound)
}

func TestUpdateCustomerKeepsStoreOwnerMerchant(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	c, err := svc.CreateCustomer(ctx, CreateCustomerRequest{
		UserID: tyler.ID.String(), PhoneNumber: "1", Address: "x", IsMerchant: true,
	})
	require.NoError(t, err)
	repo.storeOwner[c.ID] = true

	err = svc.UpdateCustomer(ctx, c.ID.String(), UpdateCustomerRequest{PhoneNumber: "2", Address: "y", IsMerchant: false})
	assert.ErrorIs(t, err, errs.ErrConflict)

	got, err := svc.GetCustomer(ctx, c.ID.String())
	require.NoError(t, err)
	assert.True(t, got.IsMerchant)
	assert.Equal(t, "1", got.PhoneNumber)

	require.NoError(t, svc.UpdateCustomer(ctx, c.ID.String(), UpdateCustomerRequest{PhoneNumber: "2", Address: "y", IsMerchant: true}))
}
