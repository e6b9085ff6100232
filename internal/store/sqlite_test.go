package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elyse-t/ecormmerce-api/internal/config"
)

func configWithDriver(driver string) config.DatabaseConfig {
	return config.DatabaseConfig{Driver: driver}
}

func newTestStore(t *testing.T) Store {
	t.Helper()
	st, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestInsertUser_AndFind(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	id, err := st.InsertUser(ctx, "alice", "a@x.com", "hash1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	u, err := st.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, "hash1", u.PasswordHash)
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsertUser_UniqueViolations(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.InsertUser(ctx, "alice", "a@x.com", "hash1")
	require.NoError(t, err)

	_, err = st.InsertUser(ctx, "alice", "b@x.com", "hash2")
	assert.ErrorIs(t, err, ErrDuplicate, "duplicate username")

	_, err = st.InsertUser(ctx, "bob", "a@x.com", "hash3")
	assert.ErrorIs(t, err, ErrDuplicate, "duplicate email")

	// The failed inserts left no partial rows behind.
	_, err = st.FindUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductLifecycle(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	p := Product{Name: "Widget", Description: "d", Quantity: 5, Price: 9.99}
	require.NoError(t, st.CreateProduct(ctx, &p))
	assert.Equal(t, int64(1), p.ID)

	got, err := st.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, *got)

	updated, err := st.UpdateProduct(ctx, p.ID, Product{Name: "Gadget", Description: "new", Quantity: 7, Price: 19.99})
	require.NoError(t, err)
	assert.Equal(t, Product{ID: p.ID, Name: "Gadget", Description: "new", Quantity: 7, Price: 19.99}, *updated)

	patched, err := st.UpdateProductQuantity(ctx, p.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), patched.Quantity)
	assert.Equal(t, "Gadget", patched.Name, "quantity update must not touch other fields")

	require.NoError(t, st.DeleteProduct(ctx, p.ID))

	_, err = st.GetProduct(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProduct_NotFoundSentinels(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.GetProduct(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.UpdateProduct(ctx, 99, Product{Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.UpdateProductQuantity(ctx, 99, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, st.DeleteProduct(ctx, 99), ErrNotFound)
}

func TestUpdateProduct_SameValues(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	p := Product{Name: "Widget", Description: "d", Quantity: 5, Price: 9.99}
	require.NoError(t, st.CreateProduct(ctx, &p))

	// Writing identical values is still a hit, not a 404.
	updated, err := st.UpdateProduct(ctx, p.ID, Product{Name: "Widget", Description: "d", Quantity: 5, Price: 9.99})
	require.NoError(t, err)
	assert.Equal(t, p, *updated)
}

func TestListProducts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	list, err := st.ListProducts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for _, name := range []string{"P1", "P2", "P3"} {
		p := Product{Name: name, Quantity: 1, Price: 1}
		require.NoError(t, st.CreateProduct(ctx, &p))
	}

	// Touch P3 then P1; order must still follow ids.
	_, err = st.UpdateProductQuantity(ctx, 3, 9)
	require.NoError(t, err)
	_, err = st.UpdateProductQuantity(ctx, 1, 9)
	require.NoError(t, err)

	list, err = st.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "P1", list[0].Name)
	assert.Equal(t, "P2", list[1].Name)
	assert.Equal(t, "P3", list[2].Name)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(configWithDriver("oracle"))
	assert.Error(t, err)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := configWithDriver("sqlite")
	cfg.Path = ":memory:"

	st, err := Open(cfg)
	require.NoError(t, err)
	defer st.Close()

	_, err = st.InsertUser(context.Background(), "alice", "a@x.com", "hash1")
	assert.NoError(t, err)
}
