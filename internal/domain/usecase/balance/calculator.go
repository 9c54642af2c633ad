package balance

import (
	"sort"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UnknownGroupName labels a group bucket whose group row could not be joined
const UnknownGroupName = "Unknown Group"

// bucketKey identifies one scope partition: the personal bucket or a single group
type bucketKey struct {
	scope   entity.Scope
	groupID string
}

// counterparty accumulates both directions of debt against one user within a bucket
type counterparty struct {
	name      string
	theyOweMe decimal.Decimal
	iOweThem  decimal.Decimal
}

type bucket struct {
	groupName string
	parties   map[string]*counterparty
}

type accumulator struct {
	buckets map[bucketKey]*bucket
}

func newAccumulator() *accumulator {
	return &accumulator{buckets: make(map[bucketKey]*bucket)}
}

func keyOf(share entity.ExpenseShare) bucketKey {
	if share.Scope == entity.ScopeGroup && share.GroupID != "" {
		return bucketKey{scope: entity.ScopeGroup, groupID: share.GroupID}
	}
	return bucketKey{scope: entity.ScopePersonal}
}

func (a *accumulator) party(share entity.ExpenseShare, id, name string) *counterparty {
	key := keyOf(share)
	b, ok := a.buckets[key]
	if !ok {
		b = &bucket{parties: make(map[string]*counterparty)}
		a.buckets[key] = b
	}
	if b.groupName == "" && share.GroupName != "" {
		b.groupName = share.GroupName
	}

	p, ok := b.parties[id]
	if !ok {
		p = &counterparty{name: name, theyOweMe: decimal.Zero, iOweThem: decimal.Zero}
		b.parties[id] = p
	}
	if p.name == "" {
		p.name = name
	}
	return p
}

// Calculate computes the net balances of userID from two independent inputs:
// participations are the participant rows of userID (what userID owes payers),
// paid are the participant rows of expenses userID paid for (what others owe userID).
// Self pairs are skipped, balances within entity.Epsilon of zero are dropped, and
// every counterparty is netted separately per scope partition.
func Calculate(userID string, participations, paid []entity.ExpenseShare) *entity.BalanceResult {
	acc := newAccumulator()

	// liabilities
	for _, share := range participations {
		if share.ParticipantID != userID || share.PayerID == userID {
			continue
		}
		p := acc.party(share, share.PayerID, share.PayerName)
		p.iOweThem = p.iOweThem.Add(share.Share)
	}

	// receivables
	for _, share := range paid {
		if share.PayerID != userID || share.ParticipantID == userID {
			continue
		}
		p := acc.party(share, share.ParticipantID, share.ParticipantName)
		p.theyOweMe = p.theyOweMe.Add(share.Share)
	}

	return acc.result()
}

func (a *accumulator) result() *entity.BalanceResult {
	result := entity.NewEmptyBalanceResult()

	for key, b := range a.buckets {
		rows := b.netRows()
		if key.scope == entity.ScopePersonal {
			result.Personal = append(result.Personal, rows...)
			continue
		}
		if len(rows) == 0 {
			continue
		}
		name := b.groupName
		if name == "" {
			name = UnknownGroupName
		}
		result.Groups = append(result.Groups, entity.GroupBalances{
			GroupID:   key.groupID,
			GroupName: name,
			Balances:  rows,
		})
	}

	sortRows(result.Personal)
	sort.Slice(result.Groups, func(i, j int) bool {
		gi, gj := result.Groups[i], result.Groups[j]
		if gi.GroupName != gj.GroupName {
			return gi.GroupName < gj.GroupName
		}
		return gi.GroupID < gj.GroupID
	})
	return result
}

func (b *bucket) netRows() []entity.NetBalance {
	rows := make([]entity.NetBalance, 0, len(b.parties))
	for id, p := range b.parties {
		net := p.theyOweMe.Sub(p.iOweThem)
		if entity.IsSettled(net) {
			continue
		}
		rows = append(rows, entity.NetBalance{
			CounterpartyID:   id,
			CounterpartyName: p.name,
			NetBalance:       net,
			TheyOweMe:        p.theyOweMe,
			IOweThem:         p.iOweThem,
		})
	}
	sortRows(rows)
	return rows
}

func sortRows(rows []entity.NetBalance) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CounterpartyName != rows[j].CounterpartyName {
			return rows[i].CounterpartyName < rows[j].CounterpartyName
		}
		return rows[i].CounterpartyID < rows[j].CounterpartyID
	})
}

// Filter keeps the partitions selected by filter. The input is not modified.
func Filter(result *entity.BalanceResult, filter entity.BalanceFilter) *entity.BalanceResult {
	filtered := entity.NewEmptyBalanceResult()
	if filter.IncludesPersonal() {
		filtered.Personal = append(filtered.Personal, result.Personal...)
	}
	for _, g := range result.Groups {
		if filter.IncludesGroup(g.GroupID) {
			filtered.Groups = append(filtered.Groups, g)
		}
	}
	return filtered
}
