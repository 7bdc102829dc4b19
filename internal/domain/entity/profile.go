package entity

// Profile is the tagged union over the four role-specific profile variants.
// Exactly one variant exists per user, and its role tag matches the user's
// role_id. The profile resolver is the only place that dispatches on the tag.
type Profile interface {
	ProfileRoleID() int
	ProfileOwnerID() uint
}

func (p *AdminProfile) ProfileRoleID() int        { return RoleIDAdmin }
func (p *AdminProfile) ProfileOwnerID() uint      { return p.UserID }
func (p *DoctorProfile) ProfileRoleID() int       { return RoleIDDoctor }
func (p *DoctorProfile) ProfileOwnerID() uint     { return p.UserID }
func (p *ReceptionistProfile) ProfileRoleID() int { return RoleIDReceptionist }
func (p *ReceptionistProfile) ProfileOwnerID() uint {
	return p.UserID
}
func (p *PatientProfile) ProfileRoleID() int   { return RoleIDPatient }
func (p *PatientProfile) ProfileOwnerID() uint { return p.UserID }
