// Code generated by ent, DO NOT EDIT.

package filelock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleettools/fleetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FileLock {
	return predicate.FileLock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FileLock {
	return predicate.FileLock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FileLock {
	return predicate.FileLock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FileLock {
	return predicate.FileLock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FileLock {
	return predicate.FileLock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FileLock {
	return predicate.FileLock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FileLock {
	return predicate.FileLock(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FileLock {
	return predicate.FileLock(sql.FieldContainsFold(FieldID, id))
}

// File applies equality check predicate on the "file" field. It's identical to FileEQ.
func File(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldFile, v))
}

// NormalizedPath applies equality check predicate on the "normalized_path" field. It's identical to NormalizedPathEQ.
func NormalizedPath(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldNormalizedPath, v))
}

// ReservedBy applies equality check predicate on the "reserved_by" field. It's identical to ReservedByEQ.
func ReservedBy(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldReservedBy, v))
}

// ReservedAt applies equality check predicate on the "reserved_at" field. It's identical to ReservedAtEQ.
func ReservedAt(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldReservedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldExpiresAt, v))
}

// ReleasedAt applies equality check predicate on the "released_at" field. It's identical to ReleasedAtEQ.
func ReleasedAt(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldReleasedAt, v))
}

// Checksum applies equality check predicate on the "checksum" field. It's identical to ChecksumEQ.
func Checksum(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldChecksum, v))
}

// ReleaseReason applies equality check predicate on the "release_reason" field. It's identical to ReleaseReasonEQ.
func ReleaseReason(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldReleaseReason, v))
}

// FileEQ applies the EQ predicate on the "file" field.
func FileEQ(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldFile, v))
}

// FileNEQ applies the NEQ predicate on the "file" field.
func FileNEQ(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldNEQ(FieldFile, v))
}

// FileIn applies the In predicate on the "file" field.
func FileIn(vs ...string) predicate.FileLock {
	return predicate.FileLock(sql.FieldIn(FieldFile, vs...))
}

// FileNotIn applies the NotIn predicate on the "file" field.
func FileNotIn(vs ...string) predicate.FileLock {
	return predicate.FileLock(sql.FieldNotIn(FieldFile, vs...))
}

// FileGT applies the GT predicate on the "file" field.
func FileGT(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldGT(FieldFile, v))
}

// FileGTE applies the GTE predicate on the "file" field.
func FileGTE(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldGTE(FieldFile, v))
}

// FileLT applies the LT predicate on the "file" field.
func FileLT(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldLT(FieldFile, v))
}

// FileLTE applies the LTE predicate on the "file" field.
func FileLTE(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldLTE(FieldFile, v))
}

// FileContains applies the Contains predicate on the "file" field.
func FileContains(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldContains(FieldFile, v))
}

// FileHasPrefix applies the HasPrefix predicate on the "file" field.
func FileHasPrefix(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldHasPrefix(FieldFile, v))
}

// FileHasSuffix applies the HasSuffix predicate on the "file" field.
func FileHasSuffix(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldHasSuffix(FieldFile, v))
}

// FileEqualFold applies the EqualFold predicate on the "file" field.
func FileEqualFold(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEqualFold(FieldFile, v))
}

// FileContainsFold applies the ContainsFold predicate on the "file" field.
func FileContainsFold(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldContainsFold(FieldFile, v))
}

// NormalizedPathEQ applies the EQ predicate on the "normalized_path" field.
func NormalizedPathEQ(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldNormalizedPath, v))
}

// NormalizedPathNEQ applies the NEQ predicate on the "normalized_path" field.
func NormalizedPathNEQ(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldNEQ(FieldNormalizedPath, v))
}

// NormalizedPathIn applies the In predicate on the "normalized_path" field.
func NormalizedPathIn(vs ...string) predicate.FileLock {
	return predicate.FileLock(sql.FieldIn(FieldNormalizedPath, vs...))
}

// NormalizedPathNotIn applies the NotIn predicate on the "normalized_path" field.
func NormalizedPathNotIn(vs ...string) predicate.FileLock {
	return predicate.FileLock(sql.FieldNotIn(FieldNormalizedPath, vs...))
}

// NormalizedPathGT applies the GT predicate on the "normalized_path" field.
func NormalizedPathGT(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldGT(FieldNormalizedPath, v))
}

// NormalizedPathGTE applies the GTE predicate on the "normalized_path" field.
func NormalizedPathGTE(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldGTE(FieldNormalizedPath, v))
}

// NormalizedPathLT applies the LT predicate on the "normalized_path" field.
func NormalizedPathLT(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldLT(FieldNormalizedPath, v))
}

// NormalizedPathLTE applies the LTE predicate on the "normalized_path" field.
func NormalizedPathLTE(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldLTE(FieldNormalizedPath, v))
}

// NormalizedPathContains applies the Contains predicate on the "normalized_path" field.
func NormalizedPathContains(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldContains(FieldNormalizedPath, v))
}

// NormalizedPathHasPrefix applies the HasPrefix predicate on the "normalized_path" field.
func NormalizedPathHasPrefix(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldHasPrefix(FieldNormalizedPath, v))
}

// NormalizedPathHasSuffix applies the HasSuffix predicate on the "normalized_path" field.
func NormalizedPathHasSuffix(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldHasSuffix(FieldNormalizedPath, v))
}

// NormalizedPathEqualFold applies the EqualFold predicate on the "normalized_path" field.
func NormalizedPathEqualFold(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEqualFold(FieldNormalizedPath, v))
}

// NormalizedPathContainsFold applies the ContainsFold predicate on the "normalized_path" field.
func NormalizedPathContainsFold(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldContainsFold(FieldNormalizedPath, v))
}

// ReservedByEQ applies the EQ predicate on the "reserved_by" field.
func ReservedByEQ(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldReservedBy, v))
}

// ReservedByNEQ applies the NEQ predicate on the "reserved_by" field.
func ReservedByNEQ(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldNEQ(FieldReservedBy, v))
}

// ReservedByIn applies the In predicate on the "reserved_by" field.
func ReservedByIn(vs ...string) predicate.FileLock {
	return predicate.FileLock(sql.FieldIn(FieldReservedBy, vs...))
}

// ReservedByNotIn applies the NotIn predicate on the "reserved_by" field.
func ReservedByNotIn(vs ...string) predicate.FileLock {
	return predicate.FileLock(sql.FieldNotIn(FieldReservedBy, vs...))
}

// ReservedByGT applies the GT predicate on the "reserved_by" field.
func ReservedByGT(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldGT(FieldReservedBy, v))
}

// ReservedByGTE applies the GTE predicate on the "reserved_by" field.
func ReservedByGTE(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldGTE(FieldReservedBy, v))
}

// ReservedByLT applies the LT predicate on the "reserved_by" field.
func ReservedByLT(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldLT(FieldReservedBy, v))
}

// ReservedByLTE applies the LTE predicate on the "reserved_by" field.
func ReservedByLTE(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldLTE(FieldReservedBy, v))
}

// ReservedByContains applies the Contains predicate on the "reserved_by" field.
func ReservedByContains(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldContains(FieldReservedBy, v))
}

// ReservedByHasPrefix applies the HasPrefix predicate on the "reserved_by" field.
func ReservedByHasPrefix(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldHasPrefix(FieldReservedBy, v))
}

// ReservedByHasSuffix applies the HasSuffix predicate on the "reserved_by" field.
func ReservedByHasSuffix(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldHasSuffix(FieldReservedBy, v))
}

// ReservedByEqualFold applies the EqualFold predicate on the "reserved_by" field.
func ReservedByEqualFold(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEqualFold(FieldReservedBy, v))
}

// ReservedByContainsFold applies the ContainsFold predicate on the "reserved_by" field.
func ReservedByContainsFold(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldContainsFold(FieldReservedBy, v))
}

// ReservedAtEQ applies the EQ predicate on the "reserved_at" field.
func ReservedAtEQ(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldReservedAt, v))
}

// ReservedAtNEQ applies the NEQ predicate on the "reserved_at" field.
func ReservedAtNEQ(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldNEQ(FieldReservedAt, v))
}

// ReservedAtIn applies the In predicate on the "reserved_at" field.
func ReservedAtIn(vs ...time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldIn(FieldReservedAt, vs...))
}

// ReservedAtNotIn applies the NotIn predicate on the "reserved_at" field.
func ReservedAtNotIn(vs ...time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldNotIn(FieldReservedAt, vs...))
}

// ReservedAtGT applies the GT predicate on the "reserved_at" field.
func ReservedAtGT(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldGT(FieldReservedAt, v))
}

// ReservedAtGTE applies the GTE predicate on the "reserved_at" field.
func ReservedAtGTE(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldGTE(FieldReservedAt, v))
}

// ReservedAtLT applies the LT predicate on the "reserved_at" field.
func ReservedAtLT(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldLT(FieldReservedAt, v))
}

// ReservedAtLTE applies the LTE predicate on the "reserved_at" field.
func ReservedAtLTE(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldLTE(FieldReservedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldLTE(FieldExpiresAt, v))
}

// ReleasedAtEQ applies the EQ predicate on the "released_at" field.
func ReleasedAtEQ(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldReleasedAt, v))
}

// ReleasedAtNEQ applies the NEQ predicate on the "released_at" field.
func ReleasedAtNEQ(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldNEQ(FieldReleasedAt, v))
}

// ReleasedAtIn applies the In predicate on the "released_at" field.
func ReleasedAtIn(vs ...time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldIn(FieldReleasedAt, vs...))
}

// ReleasedAtNotIn applies the NotIn predicate on the "released_at" field.
func ReleasedAtNotIn(vs ...time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldNotIn(FieldReleasedAt, vs...))
}

// ReleasedAtGT applies the GT predicate on the "released_at" field.
func ReleasedAtGT(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldGT(FieldReleasedAt, v))
}

// ReleasedAtGTE applies the GTE predicate on the "released_at" field.
func ReleasedAtGTE(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldGTE(FieldReleasedAt, v))
}

// ReleasedAtLT applies the LT predicate on the "released_at" field.
func ReleasedAtLT(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldLT(FieldReleasedAt, v))
}

// ReleasedAtLTE applies the LTE predicate on the "released_at" field.
func ReleasedAtLTE(v time.Time) predicate.FileLock {
	return predicate.FileLock(sql.FieldLTE(FieldReleasedAt, v))
}

// ReleasedAtIsNil applies the IsNil predicate on the "released_at" field.
func ReleasedAtIsNil() predicate.FileLock {
	return predicate.FileLock(sql.FieldIsNull(FieldReleasedAt))
}

// ReleasedAtNotNil applies the NotNil predicate on the "released_at" field.
func ReleasedAtNotNil() predicate.FileLock {
	return predicate.FileLock(sql.FieldNotNull(FieldReleasedAt))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v Purpose) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v Purpose) predicate.FileLock {
	return predicate.FileLock(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...Purpose) predicate.FileLock {
	return predicate.FileLock(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...Purpose) predicate.FileLock {
	return predicate.FileLock(sql.FieldNotIn(FieldPurpose, vs...))
}

// ChecksumEQ applies the EQ predicate on the "checksum" field.
func ChecksumEQ(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldChecksum, v))
}

// ChecksumNEQ applies the NEQ predicate on the "checksum" field.
func ChecksumNEQ(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldNEQ(FieldChecksum, v))
}

// ChecksumIn applies the In predicate on the "checksum" field.
func ChecksumIn(vs ...string) predicate.FileLock {
	return predicate.FileLock(sql.FieldIn(FieldChecksum, vs...))
}

// ChecksumNotIn applies the NotIn predicate on the "checksum" field.
func ChecksumNotIn(vs ...string) predicate.FileLock {
	return predicate.FileLock(sql.FieldNotIn(FieldChecksum, vs...))
}

// ChecksumGT applies the GT predicate on the "checksum" field.
func ChecksumGT(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldGT(FieldChecksum, v))
}

// ChecksumGTE applies the GTE predicate on the "checksum" field.
func ChecksumGTE(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldGTE(FieldChecksum, v))
}

// ChecksumLT applies the LT predicate on the "checksum" field.
func ChecksumLT(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldLT(FieldChecksum, v))
}

// ChecksumLTE applies the LTE predicate on the "checksum" field.
func ChecksumLTE(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldLTE(FieldChecksum, v))
}

// ChecksumContains applies the Contains predicate on the "checksum" field.
func ChecksumContains(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldContains(FieldChecksum, v))
}

// ChecksumHasPrefix applies the HasPrefix predicate on the "checksum" field.
func ChecksumHasPrefix(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldHasPrefix(FieldChecksum, v))
}

// ChecksumHasSuffix applies the HasSuffix predicate on the "checksum" field.
func ChecksumHasSuffix(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldHasSuffix(FieldChecksum, v))
}

// ChecksumIsNil applies the IsNil predicate on the "checksum" field.
func ChecksumIsNil() predicate.FileLock {
	return predicate.FileLock(sql.FieldIsNull(FieldChecksum))
}

// ChecksumNotNil applies the NotNil predicate on the "checksum" field.
func ChecksumNotNil() predicate.FileLock {
	return predicate.FileLock(sql.FieldNotNull(FieldChecksum))
}

// ChecksumEqualFold applies the EqualFold predicate on the "checksum" field.
func ChecksumEqualFold(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEqualFold(FieldChecksum, v))
}

// ChecksumContainsFold applies the ContainsFold predicate on the "checksum" field.
func ChecksumContainsFold(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldContainsFold(FieldChecksum, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.FileLock {
	return predicate.FileLock(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.FileLock {
	return predicate.FileLock(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.FileLock {
	return predicate.FileLock(sql.FieldNotIn(FieldStatus, vs...))
}

// ReleaseReasonEQ applies the EQ predicate on the "release_reason" field.
func ReleaseReasonEQ(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEQ(FieldReleaseReason, v))
}

// ReleaseReasonNEQ applies the NEQ predicate on the "release_reason" field.
func ReleaseReasonNEQ(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldNEQ(FieldReleaseReason, v))
}

// ReleaseReasonIn applies the In predicate on the "release_reason" field.
func ReleaseReasonIn(vs ...string) predicate.FileLock {
	return predicate.FileLock(sql.FieldIn(FieldReleaseReason, vs...))
}

// ReleaseReasonNotIn applies the NotIn predicate on the "release_reason" field.
func ReleaseReasonNotIn(vs ...string) predicate.FileLock {
	return predicate.FileLock(sql.FieldNotIn(FieldReleaseReason, vs...))
}

// ReleaseReasonGT applies the GT predicate on the "release_reason" field.
func ReleaseReasonGT(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldGT(FieldReleaseReason, v))
}

// ReleaseReasonGTE applies the GTE predicate on the "release_reason" field.
func ReleaseReasonGTE(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldGTE(FieldReleaseReason, v))
}

// ReleaseReasonLT applies the LT predicate on the "release_reason" field.
func ReleaseReasonLT(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldLT(FieldReleaseReason, v))
}

// ReleaseReasonLTE applies the LTE predicate on the "release_reason" field.
func ReleaseReasonLTE(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldLTE(FieldReleaseReason, v))
}

// ReleaseReasonContains applies the Contains predicate on the "release_reason" field.
func ReleaseReasonContains(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldContains(FieldReleaseReason, v))
}

// ReleaseReasonHasPrefix applies the HasPrefix predicate on the "release_reason" field.
func ReleaseReasonHasPrefix(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldHasPrefix(FieldReleaseReason, v))
}

// ReleaseReasonHasSuffix applies the HasSuffix predicate on the "release_reason" field.
func ReleaseReasonHasSuffix(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldHasSuffix(FieldReleaseReason, v))
}

// ReleaseReasonIsNil applies the IsNil predicate on the "release_reason" field.
func ReleaseReasonIsNil() predicate.FileLock {
	return predicate.FileLock(sql.FieldIsNull(FieldReleaseReason))
}

// ReleaseReasonNotNil applies the NotNil predicate on the "release_reason" field.
func ReleaseReasonNotNil() predicate.FileLock {
	return predicate.FileLock(sql.FieldNotNull(FieldReleaseReason))
}

// ReleaseReasonEqualFold applies the EqualFold predicate on the "release_reason" field.
func ReleaseReasonEqualFold(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldEqualFold(FieldReleaseReason, v))
}

// ReleaseReasonContainsFold applies the ContainsFold predicate on the "release_reason" field.
func ReleaseReasonContainsFold(v string) predicate.FileLock {
	return predicate.FileLock(sql.FieldContainsFold(FieldReleaseReason, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.FileLock {
	return predicate.FileLock(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.FileLock {
	return predicate.FileLock(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FileLock) predicate.FileLock {
	return predicate.FileLock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FileLock) predicate.FileLock {
	return predicate.FileLock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FileLock) predicate.FileLock {
	return predicate.FileLock(sql.NotPredicates(p))
}
