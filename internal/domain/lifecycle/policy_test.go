package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/lifecycle"
)

func TestCanBatchTransition(t *testing.T) {
	cases := []struct {
		name string
		from entity.BatchStatus
		to   entity.BatchStatus
		want bool
	}{
		{"planned a brewing", entity.BatchPlanned, entity.BatchBrewing, true},
		{"planned a cancelled", entity.BatchPlanned, entity.BatchCancelled, true},
		{"planned no salta a fermenting", entity.BatchPlanned, entity.BatchFermenting, false},
		{"fermenting atajo a ready_to_package", entity.BatchFermenting, entity.BatchReadyToPackage, true},
		{"fermenting a conditioning", entity.BatchFermenting, entity.BatchConditioning, true},
		{"packaged solo a completed", entity.BatchPackaged, entity.BatchCompleted, true},
		{"packaged no se descarta", entity.BatchPackaged, entity.BatchDumped, false},
		{"completed es terminal", entity.BatchCompleted, entity.BatchPlanned, false},
		{"cancelled es terminal", entity.BatchCancelled, entity.BatchBrewing, false},
		{"dumped es terminal", entity.BatchDumped, entity.BatchPlanned, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lifecycle.CanBatchTransition(tc.from, tc.to))
		})
	}
}

func TestCanOrderTransition(t *testing.T) {
	cases := []struct {
		name string
		from entity.OrderStatus
		to   entity.OrderStatus
		want bool
	}{
		{"draft a confirmed", entity.OrderDraft, entity.OrderConfirmed, true},
		{"draft a cancelled", entity.OrderDraft, entity.OrderCancelled, true},
		{"draft no salta a dispatched", entity.OrderDraft, entity.OrderDispatched, false},
		{"picking a dispatched", entity.OrderPicking, entity.OrderDispatched, true},
		{"dispatched no se cancela", entity.OrderDispatched, entity.OrderCancelled, false},
		{"invoiced a paid", entity.OrderInvoiced, entity.OrderPaid, true},
		{"paid es terminal", entity.OrderPaid, entity.OrderDraft, false},
		{"cancelled es terminal", entity.OrderCancelled, entity.OrderConfirmed, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lifecycle.CanOrderTransition(tc.from, tc.to))
		})
	}
}

func TestCanPurchaseOrderTransition(t *testing.T) {
	cases := []struct {
		name string
		from entity.PurchaseOrderStatus
		to   entity.PurchaseOrderStatus
		want bool
	}{
		{"draft a sent", entity.PODraft, entity.POSent, true},
		{"draft no recibe directo", entity.PODraft, entity.POReceived, false},
		{"sent a acknowledged", entity.POSent, entity.POAcknowledged, true},
		{"sent a received", entity.POSent, entity.POReceived, true},
		{"partially_received a received", entity.POPartiallyReceived, entity.POReceived, true},
		{"partially_received a cancelled", entity.POPartiallyReceived, entity.POCancelled, true},
		{"received es terminal", entity.POReceived, entity.POCancelled, false},
		{"cancelled es terminal", entity.POCancelled, entity.POSent, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lifecycle.CanPurchaseOrderTransition(tc.from, tc.to))
		})
	}
}

func TestUserPurchaseOrderTargetsExcludesPartial(t *testing.T) {
	for _, from := range []entity.PurchaseOrderStatus{
		entity.PODraft, entity.POSent, entity.POAcknowledged, entity.POPartiallyReceived,
	} {
		for _, target := range lifecycle.UserPurchaseOrderTargets(from) {
			assert.NotEqual(t, entity.POPartiallyReceived, target,
				"partially_received solo lo asigna el reconciliador (desde %s)", from)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, lifecycle.BatchTerminal(entity.BatchCompleted))
	assert.True(t, lifecycle.BatchTerminal(entity.BatchCancelled))
	assert.True(t, lifecycle.BatchTerminal(entity.BatchDumped))
	assert.False(t, lifecycle.BatchTerminal(entity.BatchPlanned))

	assert.True(t, lifecycle.OrderTerminal(entity.OrderPaid))
	assert.True(t, lifecycle.OrderTerminal(entity.OrderCancelled))
	assert.False(t, lifecycle.OrderTerminal(entity.OrderDraft))

	assert.True(t, lifecycle.PurchaseOrderTerminal(entity.POReceived))
	assert.True(t, lifecycle.PurchaseOrderTerminal(entity.POCancelled))
	assert.False(t, lifecycle.PurchaseOrderTerminal(entity.POSent))
}

func TestTargetsReturnsCopy(t *testing.T) {
	first := lifecycle.BatchTargets(entity.BatchPlanned)
	first[0] = entity.BatchDumped
	second := lifecycle.BatchTargets(entity.BatchPlanned)
	assert.Equal(t, entity.BatchBrewing, second[0], "mutar el resultado no debe tocar la política")
}
