// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: plate/v1/plate.proto

package platev1

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

type DetectPlateRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Image []byte                 `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	// 0 means the server default threshold.
	MinConfidence float64 `protobuf:"fixed64,2,opt,name=min_confidence,json=minConfidence,proto3" json:"min_confidence,omitempty"`
	// When true, intermediate preprocessing variants are written to the
	// server's debug directory.
	Debug         bool `protobuf:"varint,3,opt,name=debug,proto3" json:"debug,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetectPlateRequest) Reset() {
	*x = DetectPlateRequest{}
	mi := &file_plate_v1_plate_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectPlateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectPlateRequest) ProtoMessage() {}

func (x *DetectPlateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_plate_v1_plate_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectPlateRequest.ProtoReflect.Descriptor instead.
func (*DetectPlateRequest) Descriptor() ([]byte, []int) {
	return file_plate_v1_plate_proto_rawDescGZIP(), []int{0}
}

func (x *DetectPlateRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *DetectPlateRequest) GetMinConfidence() float64 {
	if x != nil {
		return x.MinConfidence
	}
	return 0
}

func (x *DetectPlateRequest) GetDebug() bool {
	if x != nil {
		return x.Debug
	}
	return false
}

type Attempt struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       string                 `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	RawText       string                 `protobuf:"bytes,2,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Attempt) Reset() {
	*x = Attempt{}
	mi := &file_plate_v1_plate_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Attempt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Attempt) ProtoMessage() {}

func (x *Attempt) ProtoReflect() protoreflect.Message {
	mi := &file_plate_v1_plate_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Attempt.ProtoReflect.Descriptor instead.
func (*Attempt) Descriptor() ([]byte, []int) {
	return file_plate_v1_plate_proto_rawDescGZIP(), []int{1}
}

func (x *Attempt) GetProfile() string {
	if x != nil {
		return x.Profile
	}
	return ""
}

func (x *Attempt) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *Attempt) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type DetectPlateResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Empty when no candidate survived filtering.
	Plate         string     `protobuf:"bytes,1,opt,name=plate,proto3" json:"plate,omitempty"`
	Confidence    float64    `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Attempts      []*Attempt `protobuf:"bytes,3,rep,name=attempts,proto3" json:"attempts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetectPlateResponse) Reset() {
	*x = DetectPlateResponse{}
	mi := &file_plate_v1_plate_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectPlateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectPlateResponse) ProtoMessage() {}

func (x *DetectPlateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_plate_v1_plate_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectPlateResponse.ProtoReflect.Descriptor instead.
func (*DetectPlateResponse) Descriptor() ([]byte, []int) {
	return file_plate_v1_plate_proto_rawDescGZIP(), []int{2}
}

func (x *DetectPlateResponse) GetPlate() string {
	if x != nil {
		return x.Plate
	}
	return ""
}

func (x *DetectPlateResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *DetectPlateResponse) GetAttempts() []*Attempt {
	if x != nil {
		return x.Attempts
	}
	return nil
}

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Plate         string                 `protobuf:"bytes,3,opt,name=plate,proto3" json:"plate,omitempty"`
	Confidence    float64                `protobuf:"fixed64,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	MinConfidence float64                `protobuf:"fixed64,5,opt,name=min_confidence,json=minConfidence,proto3" json:"min_confidence,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,6,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	StartedAt     string                 `protobuf:"bytes,7,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,8,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_plate_v1_plate_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_plate_v1_plate_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_plate_v1_plate_proto_rawDescGZIP(), []int{3}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetPlate() string {
	if x != nil {
		return x.Plate
	}
	return ""
}

func (x *Job) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Job) GetMinConfidence() float64 {
	if x != nil {
		return x.MinConfidence
	}
	return 0
}

func (x *Job) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_plate_v1_plate_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_plate_v1_plate_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_plate_v1_plate_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_plate_v1_plate_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_plate_v1_plate_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_plate_v1_plate_proto_rawDescGZIP(), []int{5}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Dates in YYYY-MM-DD form; empty means unbounded.
	FromDate      string `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	Limit         int32  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_plate_v1_plate_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_plate_v1_plate_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_plate_v1_plate_proto_rawDescGZIP(), []int{6}
}

func (x *ListJobsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListJobsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_plate_v1_plate_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_plate_v1_plate_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_plate_v1_plate_proto_rawDescGZIP(), []int{7}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ExportJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsRequest) Reset() {
	*x = ExportJobsRequest{}
	mi := &file_plate_v1_plate_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsRequest) ProtoMessage() {}

func (x *ExportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_plate_v1_plate_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsRequest.ProtoReflect.Descriptor instead.
func (*ExportJobsRequest) Descriptor() ([]byte, []int) {
	return file_plate_v1_plate_proto_rawDescGZIP(), []int{8}
}

func (x *ExportJobsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportJobsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsResponse) Reset() {
	*x = ExportJobsResponse{}
	mi := &file_plate_v1_plate_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsResponse) ProtoMessage() {}

func (x *ExportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_plate_v1_plate_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsResponse.ProtoReflect.Descriptor instead.
func (*ExportJobsResponse) Descriptor() ([]byte, []int) {
	return file_plate_v1_plate_proto_rawDescGZIP(), []int{9}
}

func (x *ExportJobsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_plate_v1_plate_proto protoreflect.FileDescriptor

const file_plate_v1_plate_proto_rawDesc = "" +
	"\n" +
	"\x14plate/v1/plate.proto\x12\bplate.v1\"g\n" +
	"\x12DetectPlateRequest\x12\x14\n" +
	"\x05image\x18\x01 \x01(\fR\x05image\x12%\n" +
	"\x0emin_confidence\x18\x02 \x01(\x01R\rminConfidence\x12\x14\n" +
	"\x05debug\x18\x03 \x01(\bR\x05debug\"^\n" +
	"\aAttempt\x12\x18\n" +
	"\aprofile\x18\x01 \x01(\tR\aprofile\x12\x19\n" +
	"\braw_text\x18\x02 \x01(\tR\arawText\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\"z\n" +
	"\x13DetectPlateResponse\x12\x14\n" +
	"\x05plate\x18\x01 \x01(\tR\x05plate\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\x12-\n" +
	"\battempts\x18\x03 \x03(\v2\x11.plate.v1.AttemptR\battempts\"\x92\x02\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05plate\x18\x03 \x01(\tR\x05plate\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x01R\n" +
	"confidence\x12%\n" +
	"\x0emin_confidence\x18\x05 \x01(\x01R\rminConfidence\x12!\n" +
	"\fneeds_review\x18\x06 \x01(\bR\vneedsReview\x12\x1d\n" +
	"\n" +
	"started_at\x18\a \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\b \x01(\tR\n" +
	"finishedAt\x12#\n" +
	"\rerror_message\x18\t \x01(\tR\ferrorMessage\"\x1f\n" +
	"\rGetJobRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"1\n" +
	"\x0eGetJobResponse\x12\x1f\n" +
	"\x03job\x18\x01 \x01(\v2\r.plate.v1.JobR\x03job\"]\n" +
	"\x0fListJobsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"5\n" +
	"\x10ListJobsResponse\x12!\n" +
	"\x04jobs\x18\x01 \x03(\v2\r.plate.v1.JobR\x04jobs\"I\n" +
	"\x11ExportJobsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"(\n" +
	"\x12ExportJobsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xa3\x02\n" +
	"\fPlateService\x12J\n" +
	"\vDetectPlate\x12\x1c.plate.v1.DetectPlateRequest\x1a\x1d.plate.v1.DetectPlateResponse\x12;\n" +
	"\x06GetJob\x12\x17.plate.v1.GetJobRequest\x1a\x18.plate.v1.GetJobResponse\x12A\n" +
	"\bListJobs\x12\x19.plate.v1.ListJobsRequest\x1a\x1a.plate.v1.ListJobsResponse\x12G\n" +
	"\n" +
	"ExportJobs\x12\x1b.plate.v1.ExportJobsRequest\x1a\x1c.plate.v1.ExportJobsResponseB5Z3github.com/autocare/platetrack/gen/plate/v1;platev1b\x06proto3"

var (
	file_plate_v1_plate_proto_rawDescOnce sync.Once
	file_plate_v1_plate_proto_rawDescData []byte
)

func file_plate_v1_plate_proto_rawDescGZIP() []byte {
	file_plate_v1_plate_proto_rawDescOnce.Do(func() {
		file_plate_v1_plate_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_plate_v1_plate_proto_rawDesc), len(file_plate_v1_plate_proto_rawDesc)))
	})
	return file_plate_v1_plate_proto_rawDescData
}

var file_plate_v1_plate_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_plate_v1_plate_proto_goTypes = []any{
	(*DetectPlateRequest)(nil),  // 0: plate.v1.DetectPlateRequest
	(*Attempt)(nil),             // 1: plate.v1.Attempt
	(*DetectPlateResponse)(nil), // 2: plate.v1.DetectPlateResponse
	(*Job)(nil),                 // 3: plate.v1.Job
	(*GetJobRequest)(nil),       // 4: plate.v1.GetJobRequest
	(*GetJobResponse)(nil),      // 5: plate.v1.GetJobResponse
	(*ListJobsRequest)(nil),     // 6: plate.v1.ListJobsRequest
	(*ListJobsResponse)(nil),    // 7: plate.v1.ListJobsResponse
	(*ExportJobsRequest)(nil),   // 8: plate.v1.ExportJobsRequest
	(*ExportJobsResponse)(nil),  // 9: plate.v1.ExportJobsResponse
}
var file_plate_v1_plate_proto_depIdxs = []int32{
	1, // 0: plate.v1.DetectPlateResponse.attempts:type_name -> plate.v1.Attempt
	3, // 1: plate.v1.GetJobResponse.job:type_name -> plate.v1.Job
	3, // 2: plate.v1.ListJobsResponse.jobs:type_name -> plate.v1.Job
	0, // 3: plate.v1.PlateService.DetectPlate:input_type -> plate.v1.DetectPlateRequest
	4, // 4: plate.v1.PlateService.GetJob:input_type -> plate.v1.GetJobRequest
	6, // 5: plate.v1.PlateService.ListJobs:input_type -> plate.v1.ListJobsRequest
	8, // 6: plate.v1.PlateService.ExportJobs:input_type -> plate.v1.ExportJobsRequest
	2, // 7: plate.v1.PlateService.DetectPlate:output_type -> plate.v1.DetectPlateResponse
	5, // 8: plate.v1.PlateService.GetJob:output_type -> plate.v1.GetJobResponse
	7, // 9: plate.v1.PlateService.ListJobs:output_type -> plate.v1.ListJobsResponse
	9, // 10: plate.v1.PlateService.ExportJobs:output_type -> plate.v1.ExportJobsResponse
	7, // [7:11] is the sub-list for method output_type
	3, // [3:7] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_plate_v1_plate_proto_init() }
func file_plate_v1_plate_proto_init() {
	if File_plate_v1_plate_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_plate_v1_plate_proto_rawDesc), len(file_plate_v1_plate_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_plate_v1_plate_proto_goTypes,
		DependencyIndexes: file_plate_v1_plate_proto_depIdxs,
		MessageInfos:      file_plate_v1_plate_proto_msgTypes,
	}.Build()
	File_plate_v1_plate_proto = out.File
	file_plate_v1_plate_proto_goTypes = nil
	file_plate_v1_plate_proto_depIdxs = nil
}
