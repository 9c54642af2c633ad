package entity

import "github.com/shopspring/decimal"

// BalanceFilter selects which partitions of a balance result are returned
type BalanceFilter struct {
	Scope   Scope  // empty means both partitions
	GroupID string // only honoured with ScopeGroup
}

// ParseBalanceFilter validates the balance_type / group_id pair of a balance query
func ParseBalanceFilter(balanceType, groupID string) (BalanceFilter, error) {
	if balanceType == "" {
		return BalanceFilter{}, nil
	}
	scope, err := ParseScope(balanceType)
	if err != nil {
		return BalanceFilter{}, err
	}
	if scope == ScopePersonal {
		return BalanceFilter{Scope: scope}, nil
	}
	return BalanceFilter{Scope: scope, GroupID: groupID}, nil
}

// IncludesPersonal reports whether personal balances are requested
func (f BalanceFilter) IncludesPersonal() bool {
	return f.Scope == "" || f.Scope == ScopePersonal
}

// IncludesGroup reports whether the balances of groupID are requested
func (f BalanceFilter) IncludesGroup(groupID string) bool {
	switch f.Scope {
	case "":
		return true
	case ScopeGroup:
		return f.GroupID == "" || f.GroupID == groupID
	default:
		return false
	}
}

// NetBalance is the signed amount between the requesting user and one counterparty
// within a scope. Positive means the counterparty owes the requesting user.
type NetBalance struct {
	CounterpartyID   string
	CounterpartyName string
	NetBalance       decimal.Decimal
	TheyOweMe        decimal.Decimal
	IOweThem         decimal.Decimal
}

// GroupBalances holds the non-zero balances of a single group
type GroupBalances struct {
	GroupID   string
	GroupName string
	Balances  []NetBalance
}

// BalanceResult is the outcome of a balance computation
type BalanceResult struct {
	Personal []NetBalance
	Groups   []GroupBalances
}

// NewEmptyBalanceResult returns a result with non-nil, empty partitions
func NewEmptyBalanceResult() *BalanceResult {
	return &BalanceResult{
		Personal: []NetBalance{},
		Groups:   []GroupBalances{},
	}
}

// Find returns the balance against counterpartyID within a scope.
// An empty groupID looks in the personal partition.
func (r *BalanceResult) Find(counterpartyID, groupID string) (NetBalance, bool) {
	rows := r.Personal
	if groupID != "" {
		rows = nil
		for _, g := range r.Groups {
			if g.GroupID == groupID {
				rows = g.Balances
				break
			}
		}
	}
	for _, row := range rows {
		if row.CounterpartyID == counterpartyID {
			return row, true
		}
	}
	return NetBalance{}, false
}

