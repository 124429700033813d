package ownermember

// Collection is the Firestore collection holding organizer accounts.
// The message and event stores read requester docs from here inside
// their own transactions.
const Collection = "owner_members"

// OwnerMember is an organizer account. Presence of a doc for a uid is the
// base "is organizer" signal; the privilege set gates the finer operations.
type OwnerMember struct {
	UID         string `firestore:"uid" json:"uid"`
	DisplayName string `firestore:"displayName" json:"displayName"`
	Email       string `firestore:"email" json:"email"`
	Desc        string `firestore:"desc,omitempty" json:"desc,omitempty"`
	Privilege   []int  `firestore:"privilege,omitempty" json:"privilege,omitempty"`
}

// ============================
// Request bodies

type AddMemberRequest struct {
	UID         string `json:"uid" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Desc        string `json:"desc,omitempty"`
	Privilege   []int  `json:"privilege,omitempty"`
}

type UpdateMemberRequest struct {
	DisplayName string `json:"displayName,omitempty"`
	Desc        string `json:"desc,omitempty"`
}

type UpdatePrivilegeRequest struct {
	Privilege []int `json:"privilege" binding:"required"`
}
