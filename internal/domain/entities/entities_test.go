package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"insurance/internal/domain/validation"
)

func TestNewStudent(t *testing.T) {
	s, err := NewStudent("Joshi", 20, 55)
	require.NoError(t, err)

	assert.Equal(t, "Joshi", s.Name())
	assert.Equal(t, "Name is Joshi, age is 20 and 55 marks scored", s.Details())
}

func TestNewStudent_Validation(t *testing.T) {
	tests := []struct {
		name      string
		age       int
		marks     int
		wantField string
	}{
		{name: "negative age", age: -5, marks: 55, wantField: "age"},
		{name: "zero age", age: 0, marks: 55, wantField: "age"},
		{name: "negative marks", age: 20, marks: -1, wantField: "marks"},
		{name: "marks above 100", age: 20, marks: 101, wantField: "marks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStudent("Joshi", tt.age, tt.marks)

			assert.Nil(t, s)
			var ve *validation.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestNewStudent_MarksBoundsInclusive(t *testing.T) {
	_, err := NewStudent("A", 1, 0)
	assert.NoError(t, err)
	_, err = NewStudent("B", 1, 100)
	assert.NoError(t, err)
}

func TestCoffeeOrder(t *testing.T) {
	o := NewCoffeeOrder("Joshi", "Coffee", "L")

	assert.Equal(t, "Joshi ordered a Coffee L.", o.Summary())
	assert.Equal(t, DefaultCoffeePrice, o.Price())
	assert.Equal(t, "Total : $5.00", o.Total())
}

func TestSmartPhone_Composition(t *testing.T) {
	iphone := NewSmartPhone("Apple", 499, WithCamera(12))
	assert.False(t, iphone.IsPro())
	assert.Equal(t, "This is a Apple device and priced at $499.00.", iphone.Info())
	assert.Equal(t, "Apple smart phone with a 12MP camera priced at $499.00.", iphone.Details())
	assert.Equal(t, iphone.Details(), iphone.ProDetails())

	galaxy := NewSmartPhone("Samsung", 999, WithCamera(108), WithStylus("s-115"))
	assert.True(t, galaxy.IsPro())
	assert.Equal(t, "Samsung pro model with a 108MP camera, s-115 enabled stylus and priced at $999.00.", galaxy.ProDetails())

	basic := NewSmartPhone("Nokia", 50)
	assert.Equal(t, "Nokia smart phone priced at $50.00.", basic.Details())
}

func TestBankAccount(t *testing.T) {
	acc, err := NewBankAccount(500)
	require.NoError(t, err)

	require.NoError(t, acc.Deposit(200))
	assert.Equal(t, 700.0, acc.Balance())

	require.NoError(t, acc.Withdraw(300))
	assert.Equal(t, 400.0, acc.Balance())

	err = acc.Withdraw(1000)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 400.0, acc.Balance())

	assert.ErrorIs(t, acc.Deposit(0), ErrNonPositiveAmount)
	assert.ErrorIs(t, acc.Withdraw(-1), ErrNonPositiveAmount)
}

func TestNewBankAccount_NegativeOpening(t *testing.T) {
	acc, err := NewBankAccount(-5)

	assert.Nil(t, acc)
	var ve *validation.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "balance", ve.Field)
}

func TestUser_Follow(t *testing.T) {
	joshi, err := NewUser("Joshi", "Love reading book", "joshi.png")
	require.NoError(t, err)
	kulkarni, err := NewUser("Kulkarni", "Love travelling..!", "kulkarni.png")
	require.NoError(t, err)

	msg, err := joshi.Follow(kulkarni)
	require.NoError(t, err)
	assert.Equal(t, "Joshi followed Kulkarni", msg)

	msg, err = joshi.Follow(kulkarni)
	require.NoError(t, err)
	assert.Equal(t, "Joshi already follows Kulkarni", msg)
	assert.Equal(t, []string{"Kulkarni"}, joshi.Following())

	_, err = joshi.Follow(joshi)
	assert.ErrorIs(t, err, ErrFollowSelf)

	assert.Equal(t, UserProfile{UserName: "Joshi", Bio: "Love reading book", ProfilePicture: "joshi.png"}, joshi.Profile())
}

func TestNewUser_RequiresName(t *testing.T) {
	u, err := NewUser("  ", "bio", "pic.png")

	assert.Nil(t, u)
	var ve *validation.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "user_name", ve.Field)
}

func TestUserLogin(t *testing.T) {
	login, err := NewUserLogin("Joshi", "secret1")
	require.NoError(t, err)

	assert.NoError(t, login.Login("secret1"))
	assert.ErrorIs(t, login.Login("wrong"), ErrWrongPassword)

	assert.ErrorIs(t, login.ChangePassword("wrong", "secret2"), ErrWrongPassword)
	assert.ErrorIs(t, login.ChangePassword("secret1", "secret1"), ErrPasswordReused)

	var ve *validation.ValidationError
	require.True(t, errors.As(login.ChangePassword("secret1", "abc"), &ve))
	assert.Equal(t, "password", ve.Field)
	assert.NotContains(t, ve.Error(), "abc")

	require.NoError(t, login.ChangePassword("secret1", "secret2"))
	assert.ErrorIs(t, login.Login("secret1"), ErrWrongPassword)
	assert.NoError(t, login.Login("secret2"))
}

func TestNewUserLogin_ShortPassword(t *testing.T) {
	login, err := NewUserLogin("Joshi", "1234")

	assert.Nil(t, login)
	var ve *validation.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "password", ve.Field)
	assert.NotContains(t, ve.Error(), "1234")
}

func TestCounter(t *testing.T) {
	c, err := NewCounter(1)
	require.NoError(t, err)

	c.Increment()
	assert.Equal(t, 2, c.Count())

	require.NoError(t, c.Decrement())
	require.NoError(t, c.Decrement())
	assert.ErrorIs(t, c.Decrement(), ErrCounterAtZero)
	assert.Equal(t, 0, c.Count())

	_, err = NewCounter(-1)
	var ve *validation.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestProduct(t *testing.T) {
	p, err := NewProduct("Notebook", 2.5, 10)
	require.NoError(t, err)

	require.NoError(t, p.Buy(4))
	assert.Equal(t, 6, p.Quantity())

	err = p.Buy(7)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Equal(t, 6, p.Quantity())

	require.NoError(t, p.Restock(4))
	assert.Equal(t, "Notebook costs $2.50 with 10 in stock", p.Info())

	assert.ErrorIs(t, p.Buy(0), ErrNonPositiveQuantity)
	assert.ErrorIs(t, p.Restock(-3), ErrNonPositiveQuantity)
}

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		quantity  int
		wantField string
	}{
		{name: "negative price", price: -1, quantity: 1, wantField: "price"},
		{name: "negative quantity", price: 1, quantity: -1, wantField: "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProduct("Notebook", tt.price, tt.quantity)

			assert.Nil(t, p)
			var ve *validation.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestNewCarInfo(t *testing.T) {
	info, err := NewCarInfo("Tata", "Tiago", 2025, 2025)
	require.NoError(t, err)
	assert.Equal(t, "car name is Tata, model Tiago and published year 2025", info.Info())

	info, err = NewCarInfo("Tata", "Tiago", 2026, 2025)
	assert.Nil(t, info)
	var ve *validation.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "year", ve.Field)
	assert.Equal(t, "ltefield", ve.Rule)
}

func TestEmployee(t *testing.T) {
	e, err := NewEmployee("Asha", 1000)
	require.NoError(t, err)

	assert.Equal(t, 12000.0, e.AnnualSalary())
	assert.Equal(t, "Asha earns $1000.00 a month, $12000.00 a year", e.Summary())

	_, err = NewEmployee("Asha", -1)
	var ve *validation.ValidationError
	assert.True(t, errors.As(err, &ve))
}
