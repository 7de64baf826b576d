// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.9
// 	protoc        (unknown)
// source: review.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type RegisterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Salt          []byte                 `protobuf:"bytes,2,opt,name=salt,proto3" json:"salt,omitempty"`
	Verifier      []byte                 `protobuf:"bytes,3,opt,name=verifier,proto3" json:"verifier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterRequest) Reset() {
	*x = RegisterRequest{}
	mi := &file_review_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterRequest) ProtoMessage() {}

func (x *RegisterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterRequest.ProtoReflect.Descriptor instead.
func (*RegisterRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{0}
}

func (x *RegisterRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *RegisterRequest) GetSalt() []byte {
	if x != nil {
		return x.Salt
	}
	return nil
}

func (x *RegisterRequest) GetVerifier() []byte {
	if x != nil {
		return x.Verifier
	}
	return nil
}

type RegisterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	IsOwner       bool                   `protobuf:"varint,2,opt,name=is_owner,json=isOwner,proto3" json:"is_owner,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterResponse) Reset() {
	*x = RegisterResponse{}
	mi := &file_review_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterResponse) ProtoMessage() {}

func (x *RegisterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterResponse.ProtoReflect.Descriptor instead.
func (*RegisterResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{1}
}

func (x *RegisterResponse) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *RegisterResponse) GetIsOwner() bool {
	if x != nil {
		return x.IsOwner
	}
	return false
}

type GetSaltRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSaltRequest) Reset() {
	*x = GetSaltRequest{}
	mi := &file_review_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSaltRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSaltRequest) ProtoMessage() {}

func (x *GetSaltRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSaltRequest.ProtoReflect.Descriptor instead.
func (*GetSaltRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{2}
}

func (x *GetSaltRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

type GetSaltResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Salt          []byte                 `protobuf:"bytes,1,opt,name=salt,proto3" json:"salt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSaltResponse) Reset() {
	*x = GetSaltResponse{}
	mi := &file_review_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSaltResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSaltResponse) ProtoMessage() {}

func (x *GetSaltResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSaltResponse.ProtoReflect.Descriptor instead.
func (*GetSaltResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{3}
}

func (x *GetSaltResponse) GetSalt() []byte {
	if x != nil {
		return x.Salt
	}
	return nil
}

type LoginRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Username          string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	VerifierCandidate []byte                 `protobuf:"bytes,2,opt,name=verifier_candidate,json=verifierCandidate,proto3" json:"verifier_candidate,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *LoginRequest) Reset() {
	*x = LoginRequest{}
	mi := &file_review_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginRequest) ProtoMessage() {}

func (x *LoginRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginRequest.ProtoReflect.Descriptor instead.
func (*LoginRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{4}
}

func (x *LoginRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *LoginRequest) GetVerifierCandidate() []byte {
	if x != nil {
		return x.VerifierCandidate
	}
	return nil
}

type LoginResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccessToken   string                 `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	RefreshToken  string                 `protobuf:"bytes,2,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginResponse) Reset() {
	*x = LoginResponse{}
	mi := &file_review_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginResponse) ProtoMessage() {}

func (x *LoginResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginResponse.ProtoReflect.Descriptor instead.
func (*LoginResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{5}
}

func (x *LoginResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *LoginResponse) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

type RefreshTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RefreshToken  string                 `protobuf:"bytes,1,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshTokenRequest) Reset() {
	*x = RefreshTokenRequest{}
	mi := &file_review_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshTokenRequest) ProtoMessage() {}

func (x *RefreshTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshTokenRequest.ProtoReflect.Descriptor instead.
func (*RefreshTokenRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{6}
}

func (x *RefreshTokenRequest) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

type RefreshTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccessToken   string                 `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	RefreshToken  string                 `protobuf:"bytes,2,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshTokenResponse) Reset() {
	*x = RefreshTokenResponse{}
	mi := &file_review_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshTokenResponse) ProtoMessage() {}

func (x *RefreshTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshTokenResponse.ProtoReflect.Descriptor instead.
func (*RefreshTokenResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{7}
}

func (x *RefreshTokenResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *RefreshTokenResponse) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

type PingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingRequest) Reset() {
	*x = PingRequest{}
	mi := &file_review_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingRequest) ProtoMessage() {}

func (x *PingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingRequest.ProtoReflect.Descriptor instead.
func (*PingRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{8}
}

type PingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingResponse) Reset() {
	*x = PingResponse{}
	mi := &file_review_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingResponse) ProtoMessage() {}

func (x *PingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingResponse.ProtoReflect.Descriptor instead.
func (*PingResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{9}
}

func (x *PingResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type SubmitDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentHash  string                 `protobuf:"bytes,1,opt,name=document_hash,json=documentHash,proto3" json:"document_hash,omitempty"`
	PublicTitle   string                 `protobuf:"bytes,2,opt,name=public_title,json=publicTitle,proto3" json:"public_title,omitempty"`
	Fee           int64                  `protobuf:"varint,3,opt,name=fee,proto3" json:"fee,omitempty"`
	StorageKey    string                 `protobuf:"bytes,4,opt,name=storage_key,json=storageKey,proto3" json:"storage_key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentRequest) Reset() {
	*x = SubmitDocumentRequest{}
	mi := &file_review_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentRequest) ProtoMessage() {}

func (x *SubmitDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentRequest.ProtoReflect.Descriptor instead.
func (*SubmitDocumentRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{10}
}

func (x *SubmitDocumentRequest) GetDocumentHash() string {
	if x != nil {
		return x.DocumentHash
	}
	return ""
}

func (x *SubmitDocumentRequest) GetPublicTitle() string {
	if x != nil {
		return x.PublicTitle
	}
	return ""
}

func (x *SubmitDocumentRequest) GetFee() int64 {
	if x != nil {
		return x.Fee
	}
	return 0
}

func (x *SubmitDocumentRequest) GetStorageKey() string {
	if x != nil {
		return x.StorageKey
	}
	return ""
}

type SubmitDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentResponse) Reset() {
	*x = SubmitDocumentResponse{}
	mi := &file_review_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentResponse) ProtoMessage() {}

func (x *SubmitDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentResponse.ProtoReflect.Descriptor instead.
func (*SubmitDocumentResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{11}
}

func (x *SubmitDocumentResponse) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

type GetDocumentInfoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentInfoRequest) Reset() {
	*x = GetDocumentInfoRequest{}
	mi := &file_review_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentInfoRequest) ProtoMessage() {}

func (x *GetDocumentInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentInfoRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentInfoRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{12}
}

func (x *GetDocumentInfoRequest) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

type GetDocumentInfoResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentHash   string                 `protobuf:"bytes,1,opt,name=document_hash,json=documentHash,proto3" json:"document_hash,omitempty"`
	PublicTitle    string                 `protobuf:"bytes,2,opt,name=public_title,json=publicTitle,proto3" json:"public_title,omitempty"`
	Submitter      string                 `protobuf:"bytes,3,opt,name=submitter,proto3" json:"submitter,omitempty"`
	SubmissionTime int64                  `protobuf:"varint,4,opt,name=submission_time,json=submissionTime,proto3" json:"submission_time,omitempty"`
	IsReviewed     bool                   `protobuf:"varint,5,opt,name=is_reviewed,json=isReviewed,proto3" json:"is_reviewed,omitempty"`
	ClauseCount    int64                  `protobuf:"varint,6,opt,name=clause_count,json=clauseCount,proto3" json:"clause_count,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetDocumentInfoResponse) Reset() {
	*x = GetDocumentInfoResponse{}
	mi := &file_review_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentInfoResponse) ProtoMessage() {}

func (x *GetDocumentInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentInfoResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentInfoResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{13}
}

func (x *GetDocumentInfoResponse) GetDocumentHash() string {
	if x != nil {
		return x.DocumentHash
	}
	return ""
}

func (x *GetDocumentInfoResponse) GetPublicTitle() string {
	if x != nil {
		return x.PublicTitle
	}
	return ""
}

func (x *GetDocumentInfoResponse) GetSubmitter() string {
	if x != nil {
		return x.Submitter
	}
	return ""
}

func (x *GetDocumentInfoResponse) GetSubmissionTime() int64 {
	if x != nil {
		return x.SubmissionTime
	}
	return 0
}

func (x *GetDocumentInfoResponse) GetIsReviewed() bool {
	if x != nil {
		return x.IsReviewed
	}
	return false
}

func (x *GetDocumentInfoResponse) GetClauseCount() int64 {
	if x != nil {
		return x.ClauseCount
	}
	return 0
}

type GetTotalDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTotalDocumentsRequest) Reset() {
	*x = GetTotalDocumentsRequest{}
	mi := &file_review_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTotalDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTotalDocumentsRequest) ProtoMessage() {}

func (x *GetTotalDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTotalDocumentsRequest.ProtoReflect.Descriptor instead.
func (*GetTotalDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{14}
}

type GetTotalDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Total         int64                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTotalDocumentsResponse) Reset() {
	*x = GetTotalDocumentsResponse{}
	mi := &file_review_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTotalDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTotalDocumentsResponse) ProtoMessage() {}

func (x *GetTotalDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTotalDocumentsResponse.ProtoReflect.Descriptor instead.
func (*GetTotalDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{15}
}

func (x *GetTotalDocumentsResponse) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

type ListMyDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyDocumentsRequest) Reset() {
	*x = ListMyDocumentsRequest{}
	mi := &file_review_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyDocumentsRequest) ProtoMessage() {}

func (x *ListMyDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListMyDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{16}
}

type ListMyDocumentsResponse struct {
	state         protoimpl.MessageState              `protogen:"open.v1"`
	Documents     []*ListMyDocumentsResponse_Document `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyDocumentsResponse) Reset() {
	*x = ListMyDocumentsResponse{}
	mi := &file_review_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyDocumentsResponse) ProtoMessage() {}

func (x *ListMyDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListMyDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{17}
}

func (x *ListMyDocumentsResponse) GetDocuments() []*ListMyDocumentsResponse_Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type AddClauseReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ClauseType    string                 `protobuf:"bytes,2,opt,name=clause_type,json=clauseType,proto3" json:"clause_type,omitempty"`
	Compliance    int64                  `protobuf:"varint,3,opt,name=compliance,proto3" json:"compliance,omitempty"`
	Sensitivity   int64                  `protobuf:"varint,4,opt,name=sensitivity,proto3" json:"sensitivity,omitempty"`
	Notes         string                 `protobuf:"bytes,5,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddClauseReviewRequest) Reset() {
	*x = AddClauseReviewRequest{}
	mi := &file_review_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddClauseReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddClauseReviewRequest) ProtoMessage() {}

func (x *AddClauseReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddClauseReviewRequest.ProtoReflect.Descriptor instead.
func (*AddClauseReviewRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{18}
}

func (x *AddClauseReviewRequest) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

func (x *AddClauseReviewRequest) GetClauseType() string {
	if x != nil {
		return x.ClauseType
	}
	return ""
}

func (x *AddClauseReviewRequest) GetCompliance() int64 {
	if x != nil {
		return x.Compliance
	}
	return 0
}

func (x *AddClauseReviewRequest) GetSensitivity() int64 {
	if x != nil {
		return x.Sensitivity
	}
	return 0
}

func (x *AddClauseReviewRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type AddClauseReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClauseId      int64                  `protobuf:"varint,1,opt,name=clause_id,json=clauseId,proto3" json:"clause_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddClauseReviewResponse) Reset() {
	*x = AddClauseReviewResponse{}
	mi := &file_review_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddClauseReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddClauseReviewResponse) ProtoMessage() {}

func (x *AddClauseReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddClauseReviewResponse.ProtoReflect.Descriptor instead.
func (*AddClauseReviewResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{19}
}

func (x *AddClauseReviewResponse) GetClauseId() int64 {
	if x != nil {
		return x.ClauseId
	}
	return 0
}

type GetClauseReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ClauseId      int64                  `protobuf:"varint,2,opt,name=clause_id,json=clauseId,proto3" json:"clause_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetClauseReviewRequest) Reset() {
	*x = GetClauseReviewRequest{}
	mi := &file_review_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetClauseReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetClauseReviewRequest) ProtoMessage() {}

func (x *GetClauseReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetClauseReviewRequest.ProtoReflect.Descriptor instead.
func (*GetClauseReviewRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{20}
}

func (x *GetClauseReviewRequest) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

func (x *GetClauseReviewRequest) GetClauseId() int64 {
	if x != nil {
		return x.ClauseId
	}
	return 0
}

type GetClauseReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClauseType    string                 `protobuf:"bytes,1,opt,name=clause_type,json=clauseType,proto3" json:"clause_type,omitempty"`
	Reviewer      string                 `protobuf:"bytes,2,opt,name=reviewer,proto3" json:"reviewer,omitempty"`
	ReviewTime    int64                  `protobuf:"varint,3,opt,name=review_time,json=reviewTime,proto3" json:"review_time,omitempty"`
	Notes         string                 `protobuf:"bytes,4,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetClauseReviewResponse) Reset() {
	*x = GetClauseReviewResponse{}
	mi := &file_review_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetClauseReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetClauseReviewResponse) ProtoMessage() {}

func (x *GetClauseReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetClauseReviewResponse.ProtoReflect.Descriptor instead.
func (*GetClauseReviewResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{21}
}

func (x *GetClauseReviewResponse) GetClauseType() string {
	if x != nil {
		return x.ClauseType
	}
	return ""
}

func (x *GetClauseReviewResponse) GetReviewer() string {
	if x != nil {
		return x.Reviewer
	}
	return ""
}

func (x *GetClauseReviewResponse) GetReviewTime() int64 {
	if x != nil {
		return x.ReviewTime
	}
	return 0
}

func (x *GetClauseReviewResponse) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type ListMyReviewsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyReviewsRequest) Reset() {
	*x = ListMyReviewsRequest{}
	mi := &file_review_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyReviewsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyReviewsRequest) ProtoMessage() {}

func (x *ListMyReviewsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyReviewsRequest.ProtoReflect.Descriptor instead.
func (*ListMyReviewsRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{22}
}

type ListMyReviewsResponse struct {
	state         protoimpl.MessageState          `protogen:"open.v1"`
	Clauses       []*ListMyReviewsResponse_Clause `protobuf:"bytes,1,rep,name=clauses,proto3" json:"clauses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyReviewsResponse) Reset() {
	*x = ListMyReviewsResponse{}
	mi := &file_review_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyReviewsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyReviewsResponse) ProtoMessage() {}

func (x *ListMyReviewsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyReviewsResponse.ProtoReflect.Descriptor instead.
func (*ListMyReviewsResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{23}
}

func (x *ListMyReviewsResponse) GetClauses() []*ListMyReviewsResponse_Clause {
	if x != nil {
		return x.Clauses
	}
	return nil
}

type CompleteAnalysisRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	DocumentId      int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	DataSensitivity int64                  `protobuf:"varint,2,opt,name=data_sensitivity,json=dataSensitivity,proto3" json:"data_sensitivity,omitempty"`
	Gdpr            int64                  `protobuf:"varint,3,opt,name=gdpr,proto3" json:"gdpr,omitempty"`
	Ccpa            int64                  `protobuf:"varint,4,opt,name=ccpa,proto3" json:"ccpa,omitempty"`
	RetentionRisk   int64                  `protobuf:"varint,5,opt,name=retention_risk,json=retentionRisk,proto3" json:"retention_risk,omitempty"`
	SharingRisk     int64                  `protobuf:"varint,6,opt,name=sharing_risk,json=sharingRisk,proto3" json:"sharing_risk,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CompleteAnalysisRequest) Reset() {
	*x = CompleteAnalysisRequest{}
	mi := &file_review_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteAnalysisRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteAnalysisRequest) ProtoMessage() {}

func (x *CompleteAnalysisRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteAnalysisRequest.ProtoReflect.Descriptor instead.
func (*CompleteAnalysisRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{24}
}

func (x *CompleteAnalysisRequest) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

func (x *CompleteAnalysisRequest) GetDataSensitivity() int64 {
	if x != nil {
		return x.DataSensitivity
	}
	return 0
}

func (x *CompleteAnalysisRequest) GetGdpr() int64 {
	if x != nil {
		return x.Gdpr
	}
	return 0
}

func (x *CompleteAnalysisRequest) GetCcpa() int64 {
	if x != nil {
		return x.Ccpa
	}
	return 0
}

func (x *CompleteAnalysisRequest) GetRetentionRisk() int64 {
	if x != nil {
		return x.RetentionRisk
	}
	return 0
}

func (x *CompleteAnalysisRequest) GetSharingRisk() int64 {
	if x != nil {
		return x.SharingRisk
	}
	return 0
}

type CompleteAnalysisResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteAnalysisResponse) Reset() {
	*x = CompleteAnalysisResponse{}
	mi := &file_review_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteAnalysisResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteAnalysisResponse) ProtoMessage() {}

func (x *CompleteAnalysisResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteAnalysisResponse.ProtoReflect.Descriptor instead.
func (*CompleteAnalysisResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{25}
}

type GetAnalysisStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnalysisStatusRequest) Reset() {
	*x = GetAnalysisStatusRequest{}
	mi := &file_review_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnalysisStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnalysisStatusRequest) ProtoMessage() {}

func (x *GetAnalysisStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnalysisStatusRequest.ProtoReflect.Descriptor instead.
func (*GetAnalysisStatusRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{26}
}

func (x *GetAnalysisStatusRequest) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

type GetAnalysisStatusResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	AnalysisComplete bool                   `protobuf:"varint,1,opt,name=analysis_complete,json=analysisComplete,proto3" json:"analysis_complete,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GetAnalysisStatusResponse) Reset() {
	*x = GetAnalysisStatusResponse{}
	mi := &file_review_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnalysisStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnalysisStatusResponse) ProtoMessage() {}

func (x *GetAnalysisStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnalysisStatusResponse.ProtoReflect.Descriptor instead.
func (*GetAnalysisStatusResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{27}
}

func (x *GetAnalysisStatusResponse) GetAnalysisComplete() bool {
	if x != nil {
		return x.AnalysisComplete
	}
	return false
}

type AuthorizeReviewerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuthorizeReviewerRequest) Reset() {
	*x = AuthorizeReviewerRequest{}
	mi := &file_review_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuthorizeReviewerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuthorizeReviewerRequest) ProtoMessage() {}

func (x *AuthorizeReviewerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuthorizeReviewerRequest.ProtoReflect.Descriptor instead.
func (*AuthorizeReviewerRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{28}
}

func (x *AuthorizeReviewerRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type AuthorizeReviewerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuthorizeReviewerResponse) Reset() {
	*x = AuthorizeReviewerResponse{}
	mi := &file_review_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuthorizeReviewerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuthorizeReviewerResponse) ProtoMessage() {}

func (x *AuthorizeReviewerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuthorizeReviewerResponse.ProtoReflect.Descriptor instead.
func (*AuthorizeReviewerResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{29}
}

type RevokeReviewerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RevokeReviewerRequest) Reset() {
	*x = RevokeReviewerRequest{}
	mi := &file_review_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevokeReviewerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevokeReviewerRequest) ProtoMessage() {}

func (x *RevokeReviewerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevokeReviewerRequest.ProtoReflect.Descriptor instead.
func (*RevokeReviewerRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{30}
}

func (x *RevokeReviewerRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type RevokeReviewerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RevokeReviewerResponse) Reset() {
	*x = RevokeReviewerResponse{}
	mi := &file_review_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevokeReviewerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevokeReviewerResponse) ProtoMessage() {}

func (x *RevokeReviewerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevokeReviewerResponse.ProtoReflect.Descriptor instead.
func (*RevokeReviewerResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{31}
}

type IsAuthorizedReviewerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IsAuthorizedReviewerRequest) Reset() {
	*x = IsAuthorizedReviewerRequest{}
	mi := &file_review_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsAuthorizedReviewerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsAuthorizedReviewerRequest) ProtoMessage() {}

func (x *IsAuthorizedReviewerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IsAuthorizedReviewerRequest.ProtoReflect.Descriptor instead.
func (*IsAuthorizedReviewerRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{32}
}

func (x *IsAuthorizedReviewerRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type IsAuthorizedReviewerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IsAuthorized  bool                   `protobuf:"varint,1,opt,name=is_authorized,json=isAuthorized,proto3" json:"is_authorized,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IsAuthorizedReviewerResponse) Reset() {
	*x = IsAuthorizedReviewerResponse{}
	mi := &file_review_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsAuthorizedReviewerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsAuthorizedReviewerResponse) ProtoMessage() {}

func (x *IsAuthorizedReviewerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IsAuthorizedReviewerResponse.ProtoReflect.Descriptor instead.
func (*IsAuthorizedReviewerResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{33}
}

func (x *IsAuthorizedReviewerResponse) GetIsAuthorized() bool {
	if x != nil {
		return x.IsAuthorized
	}
	return false
}

type RequestDecryptionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequestDecryptionRequest) Reset() {
	*x = RequestDecryptionRequest{}
	mi := &file_review_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestDecryptionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestDecryptionRequest) ProtoMessage() {}

func (x *RequestDecryptionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestDecryptionRequest.ProtoReflect.Descriptor instead.
func (*RequestDecryptionRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{34}
}

func (x *RequestDecryptionRequest) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

type RequestDecryptionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequestDecryptionResponse) Reset() {
	*x = RequestDecryptionResponse{}
	mi := &file_review_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestDecryptionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestDecryptionResponse) ProtoMessage() {}

func (x *RequestDecryptionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestDecryptionResponse.ProtoReflect.Descriptor instead.
func (*RequestDecryptionResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{35}
}

func (x *RequestDecryptionResponse) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type DecryptionCallbackRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Payload       []byte                 `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	Proof         []byte                 `protobuf:"bytes,3,opt,name=proof,proto3" json:"proof,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DecryptionCallbackRequest) Reset() {
	*x = DecryptionCallbackRequest{}
	mi := &file_review_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DecryptionCallbackRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DecryptionCallbackRequest) ProtoMessage() {}

func (x *DecryptionCallbackRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DecryptionCallbackRequest.ProtoReflect.Descriptor instead.
func (*DecryptionCallbackRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{36}
}

func (x *DecryptionCallbackRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *DecryptionCallbackRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *DecryptionCallbackRequest) GetProof() []byte {
	if x != nil {
		return x.Proof
	}
	return nil
}

type DecryptionCallbackResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DecryptionCallbackResponse) Reset() {
	*x = DecryptionCallbackResponse{}
	mi := &file_review_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DecryptionCallbackResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DecryptionCallbackResponse) ProtoMessage() {}

func (x *DecryptionCallbackResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DecryptionCallbackResponse.ProtoReflect.Descriptor instead.
func (*DecryptionCallbackResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{37}
}

type ClaimRefundRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClaimRefundRequest) Reset() {
	*x = ClaimRefundRequest{}
	mi := &file_review_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClaimRefundRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClaimRefundRequest) ProtoMessage() {}

func (x *ClaimRefundRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClaimRefundRequest.ProtoReflect.Descriptor instead.
func (*ClaimRefundRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{38}
}

func (x *ClaimRefundRequest) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

type ClaimRefundResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClaimRefundResponse) Reset() {
	*x = ClaimRefundResponse{}
	mi := &file_review_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClaimRefundResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClaimRefundResponse) ProtoMessage() {}

func (x *ClaimRefundResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClaimRefundResponse.ProtoReflect.Descriptor instead.
func (*ClaimRefundResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{39}
}

type CanClaimRefundRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CanClaimRefundRequest) Reset() {
	*x = CanClaimRefundRequest{}
	mi := &file_review_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CanClaimRefundRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CanClaimRefundRequest) ProtoMessage() {}

func (x *CanClaimRefundRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CanClaimRefundRequest.ProtoReflect.Descriptor instead.
func (*CanClaimRefundRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{40}
}

func (x *CanClaimRefundRequest) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

type CanClaimRefundResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CanClaim      bool                   `protobuf:"varint,1,opt,name=can_claim,json=canClaim,proto3" json:"can_claim,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CanClaimRefundResponse) Reset() {
	*x = CanClaimRefundResponse{}
	mi := &file_review_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CanClaimRefundResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CanClaimRefundResponse) ProtoMessage() {}

func (x *CanClaimRefundResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CanClaimRefundResponse.ProtoReflect.Descriptor instead.
func (*CanClaimRefundResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{41}
}

func (x *CanClaimRefundResponse) GetCanClaim() bool {
	if x != nil {
		return x.CanClaim
	}
	return false
}

type DepositRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Amount        int64                  `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepositRequest) Reset() {
	*x = DepositRequest{}
	mi := &file_review_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositRequest) ProtoMessage() {}

func (x *DepositRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositRequest.ProtoReflect.Descriptor instead.
func (*DepositRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{42}
}

func (x *DepositRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type DepositResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepositResponse) Reset() {
	*x = DepositResponse{}
	mi := &file_review_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositResponse) ProtoMessage() {}

func (x *DepositResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositResponse.ProtoReflect.Descriptor instead.
func (*DepositResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{43}
}

type GetBalanceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalanceRequest) Reset() {
	*x = GetBalanceRequest{}
	mi := &file_review_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceRequest) ProtoMessage() {}

func (x *GetBalanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceRequest.ProtoReflect.Descriptor instead.
func (*GetBalanceRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{44}
}

type GetBalanceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Balance       int64                  `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalanceResponse) Reset() {
	*x = GetBalanceResponse{}
	mi := &file_review_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceResponse) ProtoMessage() {}

func (x *GetBalanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceResponse.ProtoReflect.Descriptor instead.
func (*GetBalanceResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{45}
}

func (x *GetBalanceResponse) GetBalance() int64 {
	if x != nil {
		return x.Balance
	}
	return 0
}

type WithdrawRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Recipient     string                 `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WithdrawRequest) Reset() {
	*x = WithdrawRequest{}
	mi := &file_review_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawRequest) ProtoMessage() {}

func (x *WithdrawRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WithdrawRequest.ProtoReflect.Descriptor instead.
func (*WithdrawRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{46}
}

func (x *WithdrawRequest) GetRecipient() string {
	if x != nil {
		return x.Recipient
	}
	return ""
}

type WithdrawResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Amount        int64                  `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WithdrawResponse) Reset() {
	*x = WithdrawResponse{}
	mi := &file_review_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawResponse) ProtoMessage() {}

func (x *WithdrawResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WithdrawResponse.ProtoReflect.Descriptor instead.
func (*WithdrawResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{47}
}

func (x *WithdrawResponse) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type ContentUploadURLRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ContentUploadURLRequest) Reset() {
	*x = ContentUploadURLRequest{}
	mi := &file_review_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContentUploadURLRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContentUploadURLRequest) ProtoMessage() {}

func (x *ContentUploadURLRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContentUploadURLRequest.ProtoReflect.Descriptor instead.
func (*ContentUploadURLRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{48}
}

type ContentUploadURLResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StorageKey    string                 `protobuf:"bytes,1,opt,name=storage_key,json=storageKey,proto3" json:"storage_key,omitempty"`
	Url           string                 `protobuf:"bytes,2,opt,name=url,proto3" json:"url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ContentUploadURLResponse) Reset() {
	*x = ContentUploadURLResponse{}
	mi := &file_review_proto_msgTypes[49]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContentUploadURLResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContentUploadURLResponse) ProtoMessage() {}

func (x *ContentUploadURLResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[49]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContentUploadURLResponse.ProtoReflect.Descriptor instead.
func (*ContentUploadURLResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{49}
}

func (x *ContentUploadURLResponse) GetStorageKey() string {
	if x != nil {
		return x.StorageKey
	}
	return ""
}

func (x *ContentUploadURLResponse) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

type ContentDownloadURLRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ContentDownloadURLRequest) Reset() {
	*x = ContentDownloadURLRequest{}
	mi := &file_review_proto_msgTypes[50]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContentDownloadURLRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContentDownloadURLRequest) ProtoMessage() {}

func (x *ContentDownloadURLRequest) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[50]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContentDownloadURLRequest.ProtoReflect.Descriptor instead.
func (*ContentDownloadURLRequest) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{50}
}

func (x *ContentDownloadURLRequest) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

type ContentDownloadURLResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ContentDownloadURLResponse) Reset() {
	*x = ContentDownloadURLResponse{}
	mi := &file_review_proto_msgTypes[51]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContentDownloadURLResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContentDownloadURLResponse) ProtoMessage() {}

func (x *ContentDownloadURLResponse) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[51]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContentDownloadURLResponse.ProtoReflect.Descriptor instead.
func (*ContentDownloadURLResponse) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{51}
}

func (x *ContentDownloadURLResponse) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

type ListMyDocumentsResponse_Document struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	PublicTitle    string                 `protobuf:"bytes,2,opt,name=public_title,json=publicTitle,proto3" json:"public_title,omitempty"`
	SubmissionTime int64                  `protobuf:"varint,3,opt,name=submission_time,json=submissionTime,proto3" json:"submission_time,omitempty"`
	IsReviewed     bool                   `protobuf:"varint,4,opt,name=is_reviewed,json=isReviewed,proto3" json:"is_reviewed,omitempty"`
	ClauseCount    int64                  `protobuf:"varint,5,opt,name=clause_count,json=clauseCount,proto3" json:"clause_count,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListMyDocumentsResponse_Document) Reset() {
	*x = ListMyDocumentsResponse_Document{}
	mi := &file_review_proto_msgTypes[52]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyDocumentsResponse_Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyDocumentsResponse_Document) ProtoMessage() {}

func (x *ListMyDocumentsResponse_Document) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[52]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyDocumentsResponse_Document.ProtoReflect.Descriptor instead.
func (*ListMyDocumentsResponse_Document) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{17, 0}
}

func (x *ListMyDocumentsResponse_Document) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

func (x *ListMyDocumentsResponse_Document) GetPublicTitle() string {
	if x != nil {
		return x.PublicTitle
	}
	return ""
}

func (x *ListMyDocumentsResponse_Document) GetSubmissionTime() int64 {
	if x != nil {
		return x.SubmissionTime
	}
	return 0
}

func (x *ListMyDocumentsResponse_Document) GetIsReviewed() bool {
	if x != nil {
		return x.IsReviewed
	}
	return false
}

func (x *ListMyDocumentsResponse_Document) GetClauseCount() int64 {
	if x != nil {
		return x.ClauseCount
	}
	return 0
}

type ListMyReviewsResponse_Clause struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ClauseId      int64                  `protobuf:"varint,2,opt,name=clause_id,json=clauseId,proto3" json:"clause_id,omitempty"`
	ClauseType    string                 `protobuf:"bytes,3,opt,name=clause_type,json=clauseType,proto3" json:"clause_type,omitempty"`
	ReviewTime    int64                  `protobuf:"varint,4,opt,name=review_time,json=reviewTime,proto3" json:"review_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyReviewsResponse_Clause) Reset() {
	*x = ListMyReviewsResponse_Clause{}
	mi := &file_review_proto_msgTypes[53]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyReviewsResponse_Clause) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyReviewsResponse_Clause) ProtoMessage() {}

func (x *ListMyReviewsResponse_Clause) ProtoReflect() protoreflect.Message {
	mi := &file_review_proto_msgTypes[53]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyReviewsResponse_Clause.ProtoReflect.Descriptor instead.
func (*ListMyReviewsResponse_Clause) Descriptor() ([]byte, []int) {
	return file_review_proto_rawDescGZIP(), []int{23, 0}
}

func (x *ListMyReviewsResponse_Clause) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

func (x *ListMyReviewsResponse_Clause) GetClauseId() int64 {
	if x != nil {
		return x.ClauseId
	}
	return 0
}

func (x *ListMyReviewsResponse_Clause) GetClauseType() string {
	if x != nil {
		return x.ClauseType
	}
	return ""
}

func (x *ListMyReviewsResponse_Clause) GetReviewTime() int64 {
	if x != nil {
		return x.ReviewTime
	}
	return 0
}

var File_review_proto protoreflect.FileDescriptor

const file_review_proto_rawDesc = "" +
	"\n" +
	"\freview.proto\x12\x0fprivseal.review\"]\n" +
	"\x0fRegisterRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12\x12\n" +
	"\x04salt\x18\x02 \x01(\fR\x04salt\x12\x1a\n" +
	"\bverifier\x18\x03 \x01(\fR\bverifier\"G\n" +
	"\x10RegisterResponse\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12\x19\n" +
	"\bis_owner\x18\x02 \x01(\bR\aisOwner\",\n" +
	"\x0eGetSaltRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\"%\n" +
	"\x0fGetSaltResponse\x12\x12\n" +
	"\x04salt\x18\x01 \x01(\fR\x04salt\"Y\n" +
	"\fLoginRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12-\n" +
	"\x12verifier_candidate\x18\x02 \x01(\fR\x11verifierCandidate\"W\n" +
	"\rLoginResponse\x12!\n" +
	"\faccess_token\x18\x01 \x01(\tR\vaccessToken\x12#\n" +
	"\rrefresh_token\x18\x02 \x01(\tR\frefreshToken\":\n" +
	"\x13RefreshTokenRequest\x12#\n" +
	"\rrefresh_token\x18\x01 \x01(\tR\frefreshToken\"^\n" +
	"\x14RefreshTokenResponse\x12!\n" +
	"\faccess_token\x18\x01 \x01(\tR\vaccessToken\x12#\n" +
	"\rrefresh_token\x18\x02 \x01(\tR\frefreshToken\"\r\n" +
	"\vPingRequest\"&\n" +
	"\fPingResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"\x92\x01\n" +
	"\x15SubmitDocumentRequest\x12#\n" +
	"\rdocument_hash\x18\x01 \x01(\tR\fdocumentHash\x12!\n" +
	"\fpublic_title\x18\x02 \x01(\tR\vpublicTitle\x12\x10\n" +
	"\x03fee\x18\x03 \x01(\x03R\x03fee\x12\x1f\n" +
	"\vstorage_key\x18\x04 \x01(\tR\n" +
	"storageKey\"9\n" +
	"\x16SubmitDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\"9\n" +
	"\x16GetDocumentInfoRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\"\xec\x01\n" +
	"\x17GetDocumentInfoResponse\x12#\n" +
	"\rdocument_hash\x18\x01 \x01(\tR\fdocumentHash\x12!\n" +
	"\fpublic_title\x18\x02 \x01(\tR\vpublicTitle\x12\x1c\n" +
	"\tsubmitter\x18\x03 \x01(\tR\tsubmitter\x12'\n" +
	"\x0fsubmission_time\x18\x04 \x01(\x03R\x0esubmissionTime\x12\x1f\n" +
	"\vis_reviewed\x18\x05 \x01(\bR\n" +
	"isReviewed\x12!\n" +
	"\fclause_count\x18\x06 \x01(\x03R\vclauseCount\"\x1a\n" +
	"\x18GetTotalDocumentsRequest\"1\n" +
	"\x19GetTotalDocumentsResponse\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x03R\x05total\"\x18\n" +
	"\x16ListMyDocumentsRequest\"\xa8\x02\n" +
	"\x17ListMyDocumentsResponse\x12O\n" +
	"\tdocuments\x18\x01 \x03(\v21.privseal.review.ListMyDocumentsResponse.DocumentR\tdocuments\x1a\xbb\x01\n" +
	"\bDocument\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\x12!\n" +
	"\fpublic_title\x18\x02 \x01(\tR\vpublicTitle\x12'\n" +
	"\x0fsubmission_time\x18\x03 \x01(\x03R\x0esubmissionTime\x12\x1f\n" +
	"\vis_reviewed\x18\x04 \x01(\bR\n" +
	"isReviewed\x12!\n" +
	"\fclause_count\x18\x05 \x01(\x03R\vclauseCount\"\xb2\x01\n" +
	"\x16AddClauseReviewRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\x12\x1f\n" +
	"\vclause_type\x18\x02 \x01(\tR\n" +
	"clauseType\x12\x1e\n" +
	"\n" +
	"compliance\x18\x03 \x01(\x03R\n" +
	"compliance\x12 \n" +
	"\vsensitivity\x18\x04 \x01(\x03R\vsensitivity\x12\x14\n" +
	"\x05notes\x18\x05 \x01(\tR\x05notes\"6\n" +
	"\x17AddClauseReviewResponse\x12\x1b\n" +
	"\tclause_id\x18\x01 \x01(\x03R\bclauseId\"V\n" +
	"\x16GetClauseReviewRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\x12\x1b\n" +
	"\tclause_id\x18\x02 \x01(\x03R\bclauseId\"\x8d\x01\n" +
	"\x17GetClauseReviewResponse\x12\x1f\n" +
	"\vclause_type\x18\x01 \x01(\tR\n" +
	"clauseType\x12\x1a\n" +
	"\breviewer\x18\x02 \x01(\tR\breviewer\x12\x1f\n" +
	"\vreview_time\x18\x03 \x01(\x03R\n" +
	"reviewTime\x12\x14\n" +
	"\x05notes\x18\x04 \x01(\tR\x05notes\"\x16\n" +
	"\x14ListMyReviewsRequest\"\xeb\x01\n" +
	"\x15ListMyReviewsResponse\x12G\n" +
	"\aclauses\x18\x01 \x03(\v2-.privseal.review.ListMyReviewsResponse.ClauseR\aclauses\x1a\x88\x01\n" +
	"\x06Clause\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\x12\x1b\n" +
	"\tclause_id\x18\x02 \x01(\x03R\bclauseId\x12\x1f\n" +
	"\vclause_type\x18\x03 \x01(\tR\n" +
	"clauseType\x12\x1f\n" +
	"\vreview_time\x18\x04 \x01(\x03R\n" +
	"reviewTime\"\xd7\x01\n" +
	"\x17CompleteAnalysisRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\x12)\n" +
	"\x10data_sensitivity\x18\x02 \x01(\x03R\x0fdataSensitivity\x12\x12\n" +
	"\x04gdpr\x18\x03 \x01(\x03R\x04gdpr\x12\x12\n" +
	"\x04ccpa\x18\x04 \x01(\x03R\x04ccpa\x12%\n" +
	"\x0eretention_risk\x18\x05 \x01(\x03R\rretentionRisk\x12!\n" +
	"\fsharing_risk\x18\x06 \x01(\x03R\vsharingRisk\"\x1a\n" +
	"\x18CompleteAnalysisResponse\";\n" +
	"\x18GetAnalysisStatusRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\"H\n" +
	"\x19GetAnalysisStatusResponse\x12+\n" +
	"\x11analysis_complete\x18\x01 \x01(\bR\x10analysisComplete\"4\n" +
	"\x18AuthorizeReviewerRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\"\x1b\n" +
	"\x19AuthorizeReviewerResponse\"1\n" +
	"\x15RevokeReviewerRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\"\x18\n" +
	"\x16RevokeReviewerResponse\"7\n" +
	"\x1bIsAuthorizedReviewerRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\"C\n" +
	"\x1cIsAuthorizedReviewerResponse\x12#\n" +
	"\ris_authorized\x18\x01 \x01(\bR\fisAuthorized\";\n" +
	"\x18RequestDecryptionRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\":\n" +
	"\x19RequestDecryptionResponse\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\"j\n" +
	"\x19DecryptionCallbackRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x18\n" +
	"\apayload\x18\x02 \x01(\fR\apayload\x12\x14\n" +
	"\x05proof\x18\x03 \x01(\fR\x05proof\"\x1c\n" +
	"\x1aDecryptionCallbackResponse\"5\n" +
	"\x12ClaimRefundRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\"\x15\n" +
	"\x13ClaimRefundResponse\"8\n" +
	"\x15CanClaimRefundRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\"5\n" +
	"\x16CanClaimRefundResponse\x12\x1b\n" +
	"\tcan_claim\x18\x01 \x01(\bR\bcanClaim\"(\n" +
	"\x0eDepositRequest\x12\x16\n" +
	"\x06amount\x18\x01 \x01(\x03R\x06amount\"\x11\n" +
	"\x0fDepositResponse\"\x13\n" +
	"\x11GetBalanceRequest\".\n" +
	"\x12GetBalanceResponse\x12\x18\n" +
	"\abalance\x18\x01 \x01(\x03R\abalance\"/\n" +
	"\x0fWithdrawRequest\x12\x1c\n" +
	"\trecipient\x18\x01 \x01(\tR\trecipient\"*\n" +
	"\x10WithdrawResponse\x12\x16\n" +
	"\x06amount\x18\x01 \x01(\x03R\x06amount\"\x19\n" +
	"\x17ContentUploadURLRequest\"M\n" +
	"\x18ContentUploadURLResponse\x12\x1f\n" +
	"\vstorage_key\x18\x01 \x01(\tR\n" +
	"storageKey\x12\x10\n" +
	"\x03url\x18\x02 \x01(\tR\x03url\"<\n" +
	"\x19ContentDownloadURLRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\".\n" +
	"\x1aContentDownloadURLResponse\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url2\xde\x13\n" +
	"\rReviewService\x12O\n" +
	"\bRegister\x12 .privseal.review.RegisterRequest\x1a!.privseal.review.RegisterResponse\x12L\n" +
	"\aGetSalt\x12\x1f.privseal.review.GetSaltRequest\x1a .privseal.review.GetSaltResponse\x12F\n" +
	"\x05Login\x12\x1d.privseal.review.LoginRequest\x1a\x1e.privseal.review.LoginResponse\x12[\n" +
	"\fRefreshToken\x12$.privseal.review.RefreshTokenRequest\x1a%.privseal.review.RefreshTokenResponse\x12C\n" +
	"\x04Ping\x12\x1c.privseal.review.PingRequest\x1a\x1d.privseal.review.PingResponse\x12a\n" +
	"\x0eSubmitDocument\x12&.privseal.review.SubmitDocumentRequest\x1a'.privseal.review.SubmitDocumentResponse\x12d\n" +
	"\x0fGetDocumentInfo\x12'.privseal.review.GetDocumentInfoRequest\x1a(.privseal.review.GetDocumentInfoResponse\x12j\n" +
	"\x11GetTotalDocuments\x12).privseal.review.GetTotalDocumentsRequest\x1a*.privseal.review.GetTotalDocumentsResponse\x12g\n" +
	"\x10ContentUploadURL\x12(.privseal.review.ContentUploadURLRequest\x1a).privseal.review.ContentUploadURLResponse\x12m\n" +
	"\x12ContentDownloadURL\x12*.privseal.review.ContentDownloadURLRequest\x1a+.privseal.review.ContentDownloadURLResponse\x12d\n" +
	"\x0fListMyDocuments\x12'.privseal.review.ListMyDocumentsRequest\x1a(.privseal.review.ListMyDocumentsResponse\x12d\n" +
	"\x0fAddClauseReview\x12'.privseal.review.AddClauseReviewRequest\x1a(.privseal.review.AddClauseReviewResponse\x12d\n" +
	"\x0fGetClauseReview\x12'.privseal.review.GetClauseReviewRequest\x1a(.privseal.review.GetClauseReviewResponse\x12^\n" +
	"\rListMyReviews\x12%.privseal.review.ListMyReviewsRequest\x1a&.privseal.review.ListMyReviewsResponse\x12g\n" +
	"\x10CompleteAnalysis\x12(.privseal.review.CompleteAnalysisRequest\x1a).privseal.review.CompleteAnalysisResponse\x12j\n" +
	"\x11GetAnalysisStatus\x12).privseal.review.GetAnalysisStatusRequest\x1a*.privseal.review.GetAnalysisStatusResponse\x12j\n" +
	"\x11AuthorizeReviewer\x12).privseal.review.AuthorizeReviewerRequest\x1a*.privseal.review.AuthorizeReviewerResponse\x12a\n" +
	"\x0eRevokeReviewer\x12&.privseal.review.RevokeReviewerRequest\x1a'.privseal.review.RevokeReviewerResponse\x12s\n" +
	"\x14IsAuthorizedReviewer\x12,.privseal.review.IsAuthorizedReviewerRequest\x1a-.privseal.review.IsAuthorizedReviewerResponse\x12j\n" +
	"\x11RequestDecryption\x12).privseal.review.RequestDecryptionRequest\x1a*.privseal.review.RequestDecryptionResponse\x12m\n" +
	"\x12DecryptionCallback\x12*.privseal.review.DecryptionCallbackRequest\x1a+.privseal.review.DecryptionCallbackResponse\x12X\n" +
	"\vClaimRefund\x12#.privseal.review.ClaimRefundRequest\x1a$.privseal.review.ClaimRefundResponse\x12a\n" +
	"\x0eCanClaimRefund\x12&.privseal.review.CanClaimRefundRequest\x1a'.privseal.review.CanClaimRefundResponse\x12L\n" +
	"\aDeposit\x12\x1f.privseal.review.DepositRequest\x1a .privseal.review.DepositResponse\x12U\n" +
	"\n" +
	"GetBalance\x12\".privseal.review.GetBalanceRequest\x1a#.privseal.review.GetBalanceResponse\x12O\n" +
	"\bWithdraw\x12 .privseal.review.WithdrawRequest\x1a!.privseal.review.WithdrawResponseB-Z+github.com/avolkovx/privseal/internal/protob\x06proto3"

var (
	file_review_proto_rawDescOnce sync.Once
	file_review_proto_rawDescData []byte
)

func file_review_proto_rawDescGZIP() []byte {
	file_review_proto_rawDescOnce.Do(func() {
		file_review_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_review_proto_rawDesc), len(file_review_proto_rawDesc)))
	})
	return file_review_proto_rawDescData
}

var file_review_proto_msgTypes = make([]protoimpl.MessageInfo, 54)
var file_review_proto_goTypes = []any{
	(*RegisterRequest)(nil),                  // 0: privseal.review.RegisterRequest
	(*RegisterResponse)(nil),                 // 1: privseal.review.RegisterResponse
	(*GetSaltRequest)(nil),                   // 2: privseal.review.GetSaltRequest
	(*GetSaltResponse)(nil),                  // 3: privseal.review.GetSaltResponse
	(*LoginRequest)(nil),                     // 4: privseal.review.LoginRequest
	(*LoginResponse)(nil),                    // 5: privseal.review.LoginResponse
	(*RefreshTokenRequest)(nil),              // 6: privseal.review.RefreshTokenRequest
	(*RefreshTokenResponse)(nil),             // 7: privseal.review.RefreshTokenResponse
	(*PingRequest)(nil),                      // 8: privseal.review.PingRequest
	(*PingResponse)(nil),                     // 9: privseal.review.PingResponse
	(*SubmitDocumentRequest)(nil),            // 10: privseal.review.SubmitDocumentRequest
	(*SubmitDocumentResponse)(nil),           // 11: privseal.review.SubmitDocumentResponse
	(*GetDocumentInfoRequest)(nil),           // 12: privseal.review.GetDocumentInfoRequest
	(*GetDocumentInfoResponse)(nil),          // 13: privseal.review.GetDocumentInfoResponse
	(*GetTotalDocumentsRequest)(nil),         // 14: privseal.review.GetTotalDocumentsRequest
	(*GetTotalDocumentsResponse)(nil),        // 15: privseal.review.GetTotalDocumentsResponse
	(*ListMyDocumentsRequest)(nil),           // 16: privseal.review.ListMyDocumentsRequest
	(*ListMyDocumentsResponse)(nil),          // 17: privseal.review.ListMyDocumentsResponse
	(*AddClauseReviewRequest)(nil),           // 18: privseal.review.AddClauseReviewRequest
	(*AddClauseReviewResponse)(nil),          // 19: privseal.review.AddClauseReviewResponse
	(*GetClauseReviewRequest)(nil),           // 20: privseal.review.GetClauseReviewRequest
	(*GetClauseReviewResponse)(nil),          // 21: privseal.review.GetClauseReviewResponse
	(*ListMyReviewsRequest)(nil),             // 22: privseal.review.ListMyReviewsRequest
	(*ListMyReviewsResponse)(nil),            // 23: privseal.review.ListMyReviewsResponse
	(*CompleteAnalysisRequest)(nil),          // 24: privseal.review.CompleteAnalysisRequest
	(*CompleteAnalysisResponse)(nil),         // 25: privseal.review.CompleteAnalysisResponse
	(*GetAnalysisStatusRequest)(nil),         // 26: privseal.review.GetAnalysisStatusRequest
	(*GetAnalysisStatusResponse)(nil),        // 27: privseal.review.GetAnalysisStatusResponse
	(*AuthorizeReviewerRequest)(nil),         // 28: privseal.review.AuthorizeReviewerRequest
	(*AuthorizeReviewerResponse)(nil),        // 29: privseal.review.AuthorizeReviewerResponse
	(*RevokeReviewerRequest)(nil),            // 30: privseal.review.RevokeReviewerRequest
	(*RevokeReviewerResponse)(nil),           // 31: privseal.review.RevokeReviewerResponse
	(*IsAuthorizedReviewerRequest)(nil),      // 32: privseal.review.IsAuthorizedReviewerRequest
	(*IsAuthorizedReviewerResponse)(nil),     // 33: privseal.review.IsAuthorizedReviewerResponse
	(*RequestDecryptionRequest)(nil),         // 34: privseal.review.RequestDecryptionRequest
	(*RequestDecryptionResponse)(nil),        // 35: privseal.review.RequestDecryptionResponse
	(*DecryptionCallbackRequest)(nil),        // 36: privseal.review.DecryptionCallbackRequest
	(*DecryptionCallbackResponse)(nil),       // 37: privseal.review.DecryptionCallbackResponse
	(*ClaimRefundRequest)(nil),               // 38: privseal.review.ClaimRefundRequest
	(*ClaimRefundResponse)(nil),              // 39: privseal.review.ClaimRefundResponse
	(*CanClaimRefundRequest)(nil),            // 40: privseal.review.CanClaimRefundRequest
	(*CanClaimRefundResponse)(nil),           // 41: privseal.review.CanClaimRefundResponse
	(*DepositRequest)(nil),                   // 42: privseal.review.DepositRequest
	(*DepositResponse)(nil),                  // 43: privseal.review.DepositResponse
	(*GetBalanceRequest)(nil),                // 44: privseal.review.GetBalanceRequest
	(*GetBalanceResponse)(nil),               // 45: privseal.review.GetBalanceResponse
	(*WithdrawRequest)(nil),                  // 46: privseal.review.WithdrawRequest
	(*WithdrawResponse)(nil),                 // 47: privseal.review.WithdrawResponse
	(*ContentUploadURLRequest)(nil),          // 48: privseal.review.ContentUploadURLRequest
	(*ContentUploadURLResponse)(nil),         // 49: privseal.review.ContentUploadURLResponse
	(*ContentDownloadURLRequest)(nil),        // 50: privseal.review.ContentDownloadURLRequest
	(*ContentDownloadURLResponse)(nil),       // 51: privseal.review.ContentDownloadURLResponse
	(*ListMyDocumentsResponse_Document)(nil), // 52: privseal.review.ListMyDocumentsResponse.Document
	(*ListMyReviewsResponse_Clause)(nil),     // 53: privseal.review.ListMyReviewsResponse.Clause
}
var file_review_proto_depIdxs = []int32{
	52, // 0: privseal.review.ListMyDocumentsResponse.documents:type_name -> privseal.review.ListMyDocumentsResponse.Document
	53, // 1: privseal.review.ListMyReviewsResponse.clauses:type_name -> privseal.review.ListMyReviewsResponse.Clause
	0,  // 2: privseal.review.ReviewService.Register:input_type -> privseal.review.RegisterRequest
	2,  // 3: privseal.review.ReviewService.GetSalt:input_type -> privseal.review.GetSaltRequest
	4,  // 4: privseal.review.ReviewService.Login:input_type -> privseal.review.LoginRequest
	6,  // 5: privseal.review.ReviewService.RefreshToken:input_type -> privseal.review.RefreshTokenRequest
	8,  // 6: privseal.review.ReviewService.Ping:input_type -> privseal.review.PingRequest
	10, // 7: privseal.review.ReviewService.SubmitDocument:input_type -> privseal.review.SubmitDocumentRequest
	12, // 8: privseal.review.ReviewService.GetDocumentInfo:input_type -> privseal.review.GetDocumentInfoRequest
	14, // 9: privseal.review.ReviewService.GetTotalDocuments:input_type -> privseal.review.GetTotalDocumentsRequest
	48, // 10: privseal.review.ReviewService.ContentUploadURL:input_type -> privseal.review.ContentUploadURLRequest
	50, // 11: privseal.review.ReviewService.ContentDownloadURL:input_type -> privseal.review.ContentDownloadURLRequest
	16, // 12: privseal.review.ReviewService.ListMyDocuments:input_type -> privseal.review.ListMyDocumentsRequest
	18, // 13: privseal.review.ReviewService.AddClauseReview:input_type -> privseal.review.AddClauseReviewRequest
	20, // 14: privseal.review.ReviewService.GetClauseReview:input_type -> privseal.review.GetClauseReviewRequest
	22, // 15: privseal.review.ReviewService.ListMyReviews:input_type -> privseal.review.ListMyReviewsRequest
	24, // 16: privseal.review.ReviewService.CompleteAnalysis:input_type -> privseal.review.CompleteAnalysisRequest
	26, // 17: privseal.review.ReviewService.GetAnalysisStatus:input_type -> privseal.review.GetAnalysisStatusRequest
	28, // 18: privseal.review.ReviewService.AuthorizeReviewer:input_type -> privseal.review.AuthorizeReviewerRequest
	30, // 19: privseal.review.ReviewService.RevokeReviewer:input_type -> privseal.review.RevokeReviewerRequest
	32, // 20: privseal.review.ReviewService.IsAuthorizedReviewer:input_type -> privseal.review.IsAuthorizedReviewerRequest
	34, // 21: privseal.review.ReviewService.RequestDecryption:input_type -> privseal.review.RequestDecryptionRequest
	36, // 22: privseal.review.ReviewService.DecryptionCallback:input_type -> privseal.review.DecryptionCallbackRequest
	38, // 23: privseal.review.ReviewService.ClaimRefund:input_type -> privseal.review.ClaimRefundRequest
	40, // 24: privseal.review.ReviewService.CanClaimRefund:input_type -> privseal.review.CanClaimRefundRequest
	42, // 25: privseal.review.ReviewService.Deposit:input_type -> privseal.review.DepositRequest
	44, // 26: privseal.review.ReviewService.GetBalance:input_type -> privseal.review.GetBalanceRequest
	46, // 27: privseal.review.ReviewService.Withdraw:input_type -> privseal.review.WithdrawRequest
	1,  // 28: privseal.review.ReviewService.Register:output_type -> privseal.review.RegisterResponse
	3,  // 29: privseal.review.ReviewService.GetSalt:output_type -> privseal.review.GetSaltResponse
	5,  // 30: privseal.review.ReviewService.Login:output_type -> privseal.review.LoginResponse
	7,  // 31: privseal.review.ReviewService.RefreshToken:output_type -> privseal.review.RefreshTokenResponse
	9,  // 32: privseal.review.ReviewService.Ping:output_type -> privseal.review.PingResponse
	11, // 33: privseal.review.ReviewService.SubmitDocument:output_type -> privseal.review.SubmitDocumentResponse
	13, // 34: privseal.review.ReviewService.GetDocumentInfo:output_type -> privseal.review.GetDocumentInfoResponse
	15, // 35: privseal.review.ReviewService.GetTotalDocuments:output_type -> privseal.review.GetTotalDocumentsResponse
	49, // 36: privseal.review.ReviewService.ContentUploadURL:output_type -> privseal.review.ContentUploadURLResponse
	51, // 37: privseal.review.ReviewService.ContentDownloadURL:output_type -> privseal.review.ContentDownloadURLResponse
	17, // 38: privseal.review.ReviewService.ListMyDocuments:output_type -> privseal.review.ListMyDocumentsResponse
	19, // 39: privseal.review.ReviewService.AddClauseReview:output_type -> privseal.review.AddClauseReviewResponse
	21, // 40: privseal.review.ReviewService.GetClauseReview:output_type -> privseal.review.GetClauseReviewResponse
	23, // 41: privseal.review.ReviewService.ListMyReviews:output_type -> privseal.review.ListMyReviewsResponse
	25, // 42: privseal.review.ReviewService.CompleteAnalysis:output_type -> privseal.review.CompleteAnalysisResponse
	27, // 43: privseal.review.ReviewService.GetAnalysisStatus:output_type -> privseal.review.GetAnalysisStatusResponse
	29, // 44: privseal.review.ReviewService.AuthorizeReviewer:output_type -> privseal.review.AuthorizeReviewerResponse
	31, // 45: privseal.review.ReviewService.RevokeReviewer:output_type -> privseal.review.RevokeReviewerResponse
	33, // 46: privseal.review.ReviewService.IsAuthorizedReviewer:output_type -> privseal.review.IsAuthorizedReviewerResponse
	35, // 47: privseal.review.ReviewService.RequestDecryption:output_type -> privseal.review.RequestDecryptionResponse
	37, // 48: privseal.review.ReviewService.DecryptionCallback:output_type -> privseal.review.DecryptionCallbackResponse
	39, // 49: privseal.review.ReviewService.ClaimRefund:output_type -> privseal.review.ClaimRefundResponse
	41, // 50: privseal.review.ReviewService.CanClaimRefund:output_type -> privseal.review.CanClaimRefundResponse
	43, // 51: privseal.review.ReviewService.Deposit:output_type -> privseal.review.DepositResponse
	45, // 52: privseal.review.ReviewService.GetBalance:output_type -> privseal.review.GetBalanceResponse
	47, // 53: privseal.review.ReviewService.Withdraw:output_type -> privseal.review.WithdrawResponse
	28, // [28:54] is the sub-list for method output_type
	2,  // [2:28] is the sub-list for method input_type
	2,  // [2:2] is the sub-list for extension type_name
	2,  // [2:2] is the sub-list for extension extendee
	0,  // [0:2] is the sub-list for field type_name
}

func init() { file_review_proto_init() }
func file_review_proto_init() {
	if File_review_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_review_proto_rawDesc), len(file_review_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   54,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_review_proto_goTypes,
		DependencyIndexes: file_review_proto_depIdxs,
		MessageInfos:      file_review_proto_msgTypes,
	}.Build()
	File_review_proto = out.File
	file_review_proto_goTypes = nil
	file_review_proto_depIdxs = nil
}
