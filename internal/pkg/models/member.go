package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member carries the liquid balance used as the primary loan funding source
// and a denormalized copy of the member's approved loans keyed by transaction
// id, for member-scoped queries.
type Member struct {
	ID        primitive.ObjectID      `bson:"_id" json:"-"`
	MemberID  string                  `bson:"memberId" json:"memberId"`
	Email     string                  `bson:"email" json:"email"`
	FirstName string                  `bson:"firstName" json:"firstName"`
	LastName  string                  `bson:"lastName" json:"lastName"`
	Balance   float64                 `bson:"balance" json:"balance"`
	Loans     map[string]ApprovedLoan `bson:"loans,omitempty" json:"loans,omitempty"`
}
