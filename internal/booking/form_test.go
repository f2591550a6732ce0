package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotifier struct {
	mu       sync.Mutex
	payloads []Payload
	receipts []*Attachment
	err      error
	block    chan struct{}
}

func (n *fakeNotifier) Send(_ context.Context, payload Payload, receipt *Attachment) error {
	if n.block != nil {
		<-n.block
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.payloads = append(n.payloads, payload)
	n.receipts = append(n.receipts, receipt)
	return n.err
}

func (n *fakeNotifier) sent() []Payload {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Payload(nil), n.payloads...)
}

func fillUserDetails(f *Form) {
	f.UpdateField("name", "Ali Hassan")
	f.UpdateField("email", "ali@example.com")
	f.UpdateField("phone", "0123456789")
}

func fillVehicleDetails(f *Form) {
	f.UpdateField("numberPlate", "WXY 1234")
	f.UpdateField("brandModel", "Honda Civic")
	f.UpdateField("productPackage", "daily")
}

func fillAppointmentDetails(f *Form) {
	f.UpdateField("hostel", "Hostel A")
	f.UpdateField("timeslot", "2024-03-04T10:00")
}

func TestFormStartsOnUserDetails(t *testing.T) {
	f := NewForm()
	assert.Equal(t, StepUserDetails, f.Step())
	assert.False(t, f.Busy())
	assert.Empty(t, f.FieldErrors())
}

func TestNextBlocksOnMissingFields(t *testing.T) {
	f := NewForm()
	f.UpdateField("name", "Ali Hassan")

	advanced := f.Next()

	assert.False(t, advanced)
	assert.Equal(t, StepUserDetails, f.Step())
	errs := f.FieldErrors()
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")
	assert.NotContains(t, errs, "name")

	// entered values survive a failed validation
	assert.Equal(t, "Ali Hassan", f.Data().Name)
}

func TestVehicleStepReportsOnlyTheMissingField(t *testing.T) {
	f := NewForm()
	fillUserDetails(f)
	require.True(t, f.Next())

	f.UpdateField("brandModel", "Honda Civic")
	f.UpdateField("productPackage", "daily")
	// numberPlate left empty

	advanced := f.Next()

	assert.False(t, advanced)
	assert.Equal(t, StepVehicleDetails, f.Step())
	errs := f.FieldErrors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "numberPlate")
}

func TestProductPackageMustBeKnown(t *testing.T) {
	f := NewForm()
	fillUserDetails(f)
	require.True(t, f.Next())

	f.UpdateField("numberPlate", "WXY 1234")
	f.UpdateField("brandModel", "Honda Civic")
	f.UpdateField("productPackage", "deluxe")

	assert.False(t, f.Next())
	assert.Contains(t, f.FieldErrors(), "productPackage")
}

func TestWhitespaceOnlyValuesFailValidation(t *testing.T) {
	f := NewForm()
	f.UpdateField("name", "   ")
	f.UpdateField("email", "ali@example.com")
	f.UpdateField("phone", "0123456789")

	assert.False(t, f.Next())
	assert.Contains(t, f.FieldErrors(), "name")
}

func TestBackReturnsToPreviousStep(t *testing.T) {
	f := NewForm()
	fillUserDetails(f)
	require.True(t, f.Next())
	require.Equal(t, StepVehicleDetails, f.Step())

	assert.True(t, f.Back())
	assert.Equal(t, StepUserDetails, f.Step())

	// step 1 has no predecessor
	assert.False(t, f.Back())
	assert.Equal(t, StepUserDetails, f.Step())
}

func TestSubmitRequiresFinalStep(t *testing.T) {
	f := NewForm()
	notifier := &fakeNotifier{}

	err := f.Submit(context.Background(), notifier)

	assert.ErrorIs(t, err, ErrNotOnFinalStep)
	assert.Empty(t, notifier.sent())
}

func TestSubmitSendsOnePayloadAndResets(t *testing.T) {
	f := NewForm()
	notifier := &fakeNotifier{}

	fillUserDetails(f)
	require.True(t, f.Next())
	fillVehicleDetails(f)
	require.True(t, f.Next())
	fillAppointmentDetails(f)
	f.AttachReceipt(&Attachment{Name: "receipt.png", ContentType: "image/png", Data: []byte{1, 2}})

	err := f.Submit(context.Background(), notifier)
	require.NoError(t, err)

	sent := notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, Payload{
		Name:           "Ali Hassan",
		Email:          "ali@example.com",
		Phone:          "0123456789",
		Hostel:         "Hostel A",
		NumberPlate:    "WXY 1234",
		BrandModel:     "Honda Civic",
		ProductPackage: "daily",
		Timeslot:       "2024-03-04T10:00",
	}, sent[0])
	require.NotNil(t, notifier.receipts[0])
	assert.Equal(t, "receipt.png", notifier.receipts[0].Name)

	// success resets everything
	assert.Equal(t, StepUserDetails, f.Step())
	assert.Equal(t, FormData{}, f.Data())
	assert.Empty(t, f.SubmitError())
}

func TestSubmitFailureKeepsEnteredValues(t *testing.T) {
	f := NewForm()
	notifier := &fakeNotifier{err: errors.New("webhook down")}

	fillUserDetails(f)
	require.True(t, f.Next())
	fillVehicleDetails(f)
	require.True(t, f.Next())
	fillAppointmentDetails(f)

	err := f.Submit(context.Background(), notifier)
	require.Error(t, err)

	assert.Equal(t, StepAppointmentDetails, f.Step())
	assert.Equal(t, "Ali Hassan", f.Data().Name)
	assert.Equal(t, "2024-03-04T10:00", f.Data().Timeslot)
	assert.NotEmpty(t, f.SubmitError())
	assert.False(t, f.Busy())
}

func TestSubmitIsSingleFlight(t *testing.T) {
	f := NewForm()
	notifier := &fakeNotifier{block: make(chan struct{})}

	fillUserDetails(f)
	require.True(t, f.Next())
	fillVehicleDetails(f)
	require.True(t, f.Next())
	fillAppointmentDetails(f)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- f.Submit(context.Background(), notifier)
	}()

	// wait for the first submit to reach the notifier
	require.Eventually(t, f.Busy, time.Second, 5*time.Millisecond)

	err := f.Submit(context.Background(), notifier)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(notifier.block)
	require.NoError(t, <-firstDone)
	assert.Len(t, notifier.sent(), 1)
}

func TestResetClearsEverything(t *testing.T) {
	f := NewForm()
	fillUserDetails(f)
	require.True(t, f.Next())
	f.Next() // fails, leaves field errors

	f.Reset()

	assert.Equal(t, StepUserDetails, f.Step())
	assert.Equal(t, FormData{}, f.Data())
	assert.Empty(t, f.FieldErrors())
}

func TestUpdateFieldRejectsUnknownNames(t *testing.T) {
	f := NewForm()
	err := f.UpdateField("licence", "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestManagerSweepsIdleSessions(t *testing.T) {
	m := NewManager(time.Millisecond, zap.NewNop())

	token, _ := m.Start()
	_, ok := m.Get(token)
	require.True(t, ok)

	time.Sleep(5 * time.Millisecond)
	removed := m.Sweep()

	assert.Equal(t, 1, removed)
	_, ok = m.Get(token)
	assert.False(t, ok)
}

func TestManagerGetRefreshesLastSeen(t *testing.T) {
	m := NewManager(50*time.Millisecond, zap.NewNop())

	token, _ := m.Start()
	time.Sleep(30 * time.Millisecond)
	_, ok := m.Get(token)
	require.True(t, ok)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 0, m.Sweep())
	_, ok = m.Get(token)
	assert.True(t, ok)
}
