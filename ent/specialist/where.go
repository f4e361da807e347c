// Code generated by ent, DO NOT EDIT.

package specialist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleettools/fleetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Specialist {
	return predicate.Specialist(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Specialist {
	return predicate.Specialist(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Specialist {
	return predicate.Specialist(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Specialist {
	return predicate.Specialist(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Specialist {
	return predicate.Specialist(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Specialist {
	return predicate.Specialist(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Specialist {
	return predicate.Specialist(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Specialist {
	return predicate.Specialist(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Specialist {
	return predicate.Specialist(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldName, v))
}

// CurrentSortie applies equality check predicate on the "current_sortie" field. It's identical to CurrentSortieEQ.
func CurrentSortie(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldCurrentSortie, v))
}

// MissionID applies equality check predicate on the "mission_id" field. It's identical to MissionIDEQ.
func MissionID(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldMissionID, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldLastSeen, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Specialist {
	return predicate.Specialist(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Specialist {
	return predicate.Specialist(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Specialist {
	return predicate.Specialist(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Specialist {
	return predicate.Specialist(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldContainsFold(FieldName, v))
}

// CapabilitiesIsNil applies the IsNil predicate on the "capabilities" field.
func CapabilitiesIsNil() predicate.Specialist {
	return predicate.Specialist(sql.FieldIsNull(FieldCapabilities))
}

// CapabilitiesNotNil applies the NotNil predicate on the "capabilities" field.
func CapabilitiesNotNil() predicate.Specialist {
	return predicate.Specialist(sql.FieldNotNull(FieldCapabilities))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Specialist {
	return predicate.Specialist(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Specialist {
	return predicate.Specialist(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Specialist {
	return predicate.Specialist(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentSortieEQ applies the EQ predicate on the "current_sortie" field.
func CurrentSortieEQ(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldCurrentSortie, v))
}

// CurrentSortieNEQ applies the NEQ predicate on the "current_sortie" field.
func CurrentSortieNEQ(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldNEQ(FieldCurrentSortie, v))
}

// CurrentSortieIn applies the In predicate on the "current_sortie" field.
func CurrentSortieIn(vs ...string) predicate.Specialist {
	return predicate.Specialist(sql.FieldIn(FieldCurrentSortie, vs...))
}

// CurrentSortieNotIn applies the NotIn predicate on the "current_sortie" field.
func CurrentSortieNotIn(vs ...string) predicate.Specialist {
	return predicate.Specialist(sql.FieldNotIn(FieldCurrentSortie, vs...))
}

// CurrentSortieGT applies the GT predicate on the "current_sortie" field.
func CurrentSortieGT(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldGT(FieldCurrentSortie, v))
}

// CurrentSortieGTE applies the GTE predicate on the "current_sortie" field.
func CurrentSortieGTE(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldGTE(FieldCurrentSortie, v))
}

// CurrentSortieLT applies the LT predicate on the "current_sortie" field.
func CurrentSortieLT(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldLT(FieldCurrentSortie, v))
}

// CurrentSortieLTE applies the LTE predicate on the "current_sortie" field.
func CurrentSortieLTE(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldLTE(FieldCurrentSortie, v))
}

// CurrentSortieContains applies the Contains predicate on the "current_sortie" field.
func CurrentSortieContains(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldContains(FieldCurrentSortie, v))
}

// CurrentSortieHasPrefix applies the HasPrefix predicate on the "current_sortie" field.
func CurrentSortieHasPrefix(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldHasPrefix(FieldCurrentSortie, v))
}

// CurrentSortieHasSuffix applies the HasSuffix predicate on the "current_sortie" field.
func CurrentSortieHasSuffix(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldHasSuffix(FieldCurrentSortie, v))
}

// CurrentSortieIsNil applies the IsNil predicate on the "current_sortie" field.
func CurrentSortieIsNil() predicate.Specialist {
	return predicate.Specialist(sql.FieldIsNull(FieldCurrentSortie))
}

// CurrentSortieNotNil applies the NotNil predicate on the "current_sortie" field.
func CurrentSortieNotNil() predicate.Specialist {
	return predicate.Specialist(sql.FieldNotNull(FieldCurrentSortie))
}

// CurrentSortieEqualFold applies the EqualFold predicate on the "current_sortie" field.
func CurrentSortieEqualFold(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldEqualFold(FieldCurrentSortie, v))
}

// CurrentSortieContainsFold applies the ContainsFold predicate on the "current_sortie" field.
func CurrentSortieContainsFold(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldContainsFold(FieldCurrentSortie, v))
}

// MissionIDEQ applies the EQ predicate on the "mission_id" field.
func MissionIDEQ(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldMissionID, v))
}

// MissionIDNEQ applies the NEQ predicate on the "mission_id" field.
func MissionIDNEQ(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldNEQ(FieldMissionID, v))
}

// MissionIDIn applies the In predicate on the "mission_id" field.
func MissionIDIn(vs ...string) predicate.Specialist {
	return predicate.Specialist(sql.FieldIn(FieldMissionID, vs...))
}

// MissionIDNotIn applies the NotIn predicate on the "mission_id" field.
func MissionIDNotIn(vs ...string) predicate.Specialist {
	return predicate.Specialist(sql.FieldNotIn(FieldMissionID, vs...))
}

// MissionIDGT applies the GT predicate on the "mission_id" field.
func MissionIDGT(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldGT(FieldMissionID, v))
}

// MissionIDGTE applies the GTE predicate on the "mission_id" field.
func MissionIDGTE(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldGTE(FieldMissionID, v))
}

// MissionIDLT applies the LT predicate on the "mission_id" field.
func MissionIDLT(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldLT(FieldMissionID, v))
}

// MissionIDLTE applies the LTE predicate on the "mission_id" field.
func MissionIDLTE(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldLTE(FieldMissionID, v))
}

// MissionIDContains applies the Contains predicate on the "mission_id" field.
func MissionIDContains(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldContains(FieldMissionID, v))
}

// MissionIDHasPrefix applies the HasPrefix predicate on the "mission_id" field.
func MissionIDHasPrefix(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldHasPrefix(FieldMissionID, v))
}

// MissionIDHasSuffix applies the HasSuffix predicate on the "mission_id" field.
func MissionIDHasSuffix(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldHasSuffix(FieldMissionID, v))
}

// MissionIDIsNil applies the IsNil predicate on the "mission_id" field.
func MissionIDIsNil() predicate.Specialist {
	return predicate.Specialist(sql.FieldIsNull(FieldMissionID))
}

// MissionIDNotNil applies the NotNil predicate on the "mission_id" field.
func MissionIDNotNil() predicate.Specialist {
	return predicate.Specialist(sql.FieldNotNull(FieldMissionID))
}

// MissionIDEqualFold applies the EqualFold predicate on the "mission_id" field.
func MissionIDEqualFold(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldEqualFold(FieldMissionID, v))
}

// MissionIDContainsFold applies the ContainsFold predicate on the "mission_id" field.
func MissionIDContainsFold(v string) predicate.Specialist {
	return predicate.Specialist(sql.FieldContainsFold(FieldMissionID, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldLTE(FieldLastSeen, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Specialist {
	return predicate.Specialist(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Specialist {
	return predicate.Specialist(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Specialist {
	return predicate.Specialist(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Specialist) predicate.Specialist {
	return predicate.Specialist(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Specialist) predicate.Specialist {
	return predicate.Specialist(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Specialist) predicate.Specialist {
	return predicate.Specialist(sql.NotPredicates(p))
}
