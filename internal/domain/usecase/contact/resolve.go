package contact

import (
	"sort"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// Resolve merges friends and group co-members into one contact list.
// The first occurrence of a user wins, the requester is excluded, and the
// result is sorted by name with ties broken by user ID.
func Resolve(requesterID string, friends []entity.Friend, coMembers []entity.Member) []entity.Contact {
	index := make(map[string]int, len(friends)+len(coMembers))
	contacts := make([]entity.Contact, 0, len(friends)+len(coMembers))

	for _, f := range friends {
		if f.UserID == requesterID {
			continue
		}
		if _, seen := index[f.UserID]; seen {
			continue
		}
		index[f.UserID] = len(contacts)
		contacts = append(contacts, entity.Contact{
			UserID:   f.UserID,
			Username: f.Username,
			Email:    f.Email,
			IsFriend: true,
		})
	}

	groupsSeen := make(map[[2]string]struct{}, len(coMembers))
	for _, m := range coMembers {
		if m.UserID == requesterID {
			continue
		}
		i, seen := index[m.UserID]
		if !seen {
			i = len(contacts)
			index[m.UserID] = i
			contacts = append(contacts, entity.Contact{
				UserID:   m.UserID,
				Username: m.Username,
				Email:    m.Email,
			})
		}
		key := [2]string{m.UserID, m.GroupID}
		if _, counted := groupsSeen[key]; !counted {
			groupsSeen[key] = struct{}{}
			contacts[i].SharedGroups++
		}
	}

	sort.Slice(contacts, func(i, j int) bool {
		if contacts[i].Username != contacts[j].Username {
			return contacts[i].Username < contacts[j].Username
		}
		return contacts[i].UserID < contacts[j].UserID
	})
	return contacts
}

func sortFriends(friends []entity.Friend) {
	sort.Slice(friends, func(i, j int) bool {
		if friends[i].Username != friends[j].Username {
			return friends[i].Username < friends[j].Username
		}
		return friends[i].UserID < friends[j].UserID
	})
}
