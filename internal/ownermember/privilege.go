package ownermember

// Privilege numbers. The values are stable across the system: they are
// persisted in owner member docs, so never renumber them.
const (
	PrivilegeDenyMessage       = 101
	PrivilegeChangeSortWeight  = 102
	PrivilegeUpdateMessage     = 103
	PrivilegeDenyReply         = 201
	PrivilegePostReply         = 202
	PrivilegeSetPin            = 203
	PrivilegeDeleteReply       = 204
	PrivilegeAddOrRemoveAdmin  = 901
	PrivilegeAddOrRemoveRole   = 902
)

// PrivilegeName maps a privilege number to its display label. Display
// only, the numbers are the contract.
var PrivilegeName = map[int]string{
	PrivilegeDenyMessage:      "메시지 deny 권한",
	PrivilegeChangeSortWeight: "메시지 정렬 변경 권한",
	PrivilegeUpdateMessage:    "메시지 수정 권한",
	PrivilegeDenyReply:        "댓글 deny 권한",
	PrivilegePostReply:        "댓글 작성 권한",
	PrivilegeSetPin:           "메시지 pin 권한",
	PrivilegeDeleteReply:      "댓글 삭제 권한",
	PrivilegeAddOrRemoveAdmin: "관리자 추가/삭제 권한",
	PrivilegeAddOrRemoveRole:  "관리자 권한 추가/삭제 권한",
}

// HasPrivilege reports whether the member holds the given privilege number.
func (m *OwnerMember) HasPrivilege(no int) bool {
	if m == nil {
		return false
	}
	for _, p := range m.Privilege {
		if p == no {
			return true
		}
	}
	return false
}
