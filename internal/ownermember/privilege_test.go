package ownermember

import "testing"

func TestHasPrivilege(t *testing.T) {
	tests := []struct {
		name   string
		member *OwnerMember
		no     int
		want   bool
	}{
		{
			name:   "Nil",
			member: nil,
			no:     PrivilegeDenyMessage,
			want:   false,
		},
		{
			name:   "EmptySet",
			member: &OwnerMember{UID: "a"},
			no:     PrivilegeDenyMessage,
			want:   false,
		},
		{
			name:   "Present",
			member: &OwnerMember{UID: "a", Privilege: []int{PrivilegeDenyReply, PrivilegeSetPin}},
			no:     PrivilegeSetPin,
			want:   true,
		},
		{
			name:   "Absent",
			member: &OwnerMember{UID: "a", Privilege: []int{PrivilegeDenyReply}},
			no:     PrivilegeDeleteReply,
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.member.HasPrivilege(tt.no); got != tt.want {
				t.Errorf("HasPrivilege(%d) = %v, want %v", tt.no, got, tt.want)
			}
		})
	}
}

func TestPrivilegeNameCoversAllNumbers(t *testing.T) {
	for _, no := range []int{
		PrivilegeDenyMessage,
		PrivilegeChangeSortWeight,
		PrivilegeUpdateMessage,
		PrivilegeDenyReply,
		PrivilegePostReply,
		PrivilegeSetPin,
		PrivilegeDeleteReply,
		PrivilegeAddOrRemoveAdmin,
		PrivilegeAddOrRemoveRole,
	} {
		if _, ok := PrivilegeName[no]; !ok {
			t.Errorf("privilege %d has no display name", no)
		}
	}
}
