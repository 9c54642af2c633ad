package dto

import (
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// BalanceRow is the net balance against one counterparty.
// A positive net_balance means the counterparty owes the caller.
type BalanceRow struct {
	CounterpartyID   string `json:"counterparty_id"`
	CounterpartyName string `json:"counterparty_name"`
	NetBalance       string `json:"net_balance"`
	TheyOweMe        string `json:"they_owe_me"`
	IOweThem         string `json:"i_owe_them"`
}

// GroupBalanceResponse holds the balances of one group
type GroupBalanceResponse struct {
	GroupID   string       `json:"group_id"`
	GroupName string       `json:"group_name"`
	Balances  []BalanceRow `json:"balances"`
}

// BalanceResponse is the caller's balances split by scope
type BalanceResponse struct {
	UserID   string                 `json:"user_id"`
	Personal []BalanceRow           `json:"personal"`
	Group    []GroupBalanceResponse `json:"group"`
}

func fromNetBalances(rows []entity.NetBalance) []BalanceRow {
	out := make([]BalanceRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, BalanceRow{
			CounterpartyID:   row.CounterpartyID,
			CounterpartyName: row.CounterpartyName,
			NetBalance:       entity.FormatAmount(row.NetBalance),
			TheyOweMe:        entity.FormatAmount(row.TheyOweMe),
			IOweThem:         entity.FormatAmount(row.IOweThem),
		})
	}
	return out
}

// FromBalanceResult converts a balance result, never returning nil partitions
func FromBalanceResult(userID string, result *entity.BalanceResult) BalanceResponse {
	groups := make([]GroupBalanceResponse, 0, len(result.Groups))
	for _, g := range result.Groups {
		groups = append(groups, GroupBalanceResponse{
			GroupID:   g.GroupID,
			GroupName: g.GroupName,
			Balances:  fromNetBalances(g.Balances),
		})
	}
	return BalanceResponse{
		UserID:   userID,
		Personal: fromNetBalances(result.Personal),
		Group:    groups,
	}
}
